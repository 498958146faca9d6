package records

// Gender del perro.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Frequency de una medicación.
type Frequency string

const (
	FrequencyDaily         Frequency = "Daily"
	FrequencyTwiceDaily    Frequency = "Twice daily"
	FrequencyEveryOtherDay Frequency = "Every other day"
	FrequencyWeekly        Frequency = "Weekly"
	FrequencyMonthly       Frequency = "Monthly"
	FrequencyAsNeeded      Frequency = "As needed"
)

var Frequencies = []Frequency{
	FrequencyDaily, FrequencyTwiceDaily, FrequencyEveryOtherDay,
	FrequencyWeekly, FrequencyMonthly, FrequencyAsNeeded,
}

// WeightUnit: kg o lbs.
type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

type FoodType string

const (
	FoodDry        FoodType = "Dry (Kibble)"
	FoodWet        FoodType = "Wet / Canned"
	FoodRaw        FoodType = "Raw"
	FoodHomeCooked FoodType = "Home-cooked"
	FoodMixed      FoodType = "Mixed"
	FoodTreats     FoodType = "Treats"
)

var FoodTypes = []FoodType{FoodDry, FoodWet, FoodRaw, FoodHomeCooked, FoodMixed, FoodTreats}

type MealTime string

const (
	MealMorning MealTime = "Morning"
	MealNoon    MealTime = "Noon"
	MealEvening MealTime = "Evening"
	MealSnack   MealTime = "Snack"
)

var MealTimes = []MealTime{MealMorning, MealNoon, MealEvening, MealSnack}

type EnergyLevel string

const (
	EnergyHigh    EnergyLevel = "High"
	EnergyNormal  EnergyLevel = "Normal"
	EnergyLow     EnergyLevel = "Low"
	EnergyVeryLow EnergyLevel = "Very Low"
)

var EnergyLevels = []EnergyLevel{EnergyHigh, EnergyNormal, EnergyLow, EnergyVeryLow}

type Appetite string

const (
	AppetiteGreat     Appetite = "Great"
	AppetiteNormal    Appetite = "Normal"
	AppetitePoor      Appetite = "Poor"
	AppetiteNotEating Appetite = "Not eating"
)

var Appetites = []Appetite{AppetiteGreat, AppetiteNormal, AppetitePoor, AppetiteNotEating}

type SessionType string

const (
	SessionPhysiotherapy SessionType = "Physiotherapy"
	SessionHydrotherapy  SessionType = "Hydrotherapy"
	SessionAcupuncture   SessionType = "Acupuncture"
	SessionMassage       SessionType = "Massage"
	SessionLaserTherapy  SessionType = "Laser Therapy"
	SessionOther         SessionType = "Other"
)

var SessionTypes = []SessionType{
	SessionPhysiotherapy, SessionHydrotherapy, SessionAcupuncture,
	SessionMassage, SessionLaserTherapy, SessionOther,
}

func oneOf[E ~string](v E, allowed []E) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
