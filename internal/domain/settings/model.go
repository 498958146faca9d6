package settings

// Settings son las preferencias del dueño. Viven sólo en el almacén local.
type Settings struct {
	Email                string `json:"email"`
	ReminderDaysBefore   int    `json:"reminderDaysBefore"`
	MedicationReminders  bool   `json:"medicationReminders"`
	VaccinationReminders bool   `json:"vaccinationReminders"`
	VetReminders         bool   `json:"vetReminders"`
	TherapyReminders     bool   `json:"therapyReminders"`
}

func Defaults() Settings {
	return Settings{
		Email:                "",
		ReminderDaysBefore:   3,
		MedicationReminders:  true,
		VaccinationReminders: true,
		VetReminders:         true,
		TherapyReminders:     true,
	}
}
