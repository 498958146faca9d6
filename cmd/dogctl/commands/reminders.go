package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"dog-health-tracker/internal/domain/reminders"
)

// remindersCmd agrupa las operaciones del job
var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Job de recordatorios",
}

var remindersRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Hace una pasada del job y muestra el resultado",
	Long: `Arma el digest de cada perro (vacunas por vencer y vencidas, medicaciones
activas, terapia de mañana, turnos próximos) y lo entrega si hay destinatario.

Examples:
  dogctl reminders run
  dogctl reminders run --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		report, runErr := a.Reminders.Run(cmd.Context())
		if err := printReport(report); err != nil {
			return err
		}
		return runErr
	},
}

var remindersScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Corre el job según REMINDER_CRON hasta recibir una señal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		loc, err := a.Config.Reminder.Location()
		if err != nil {
			return err
		}
		sched, err := reminders.NewScheduler(a.Reminders, a.Config.Reminder.Cron, loc, a.Log)
		if err != nil {
			return err
		}
		sched.Start()
		fmt.Printf("next run: %s\n", sched.Next().Format(time.RFC3339))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		sched.Stop(stopCtx)
		return nil
	},
}

func init() {
	remindersCmd.AddCommand(remindersRunCmd)
	remindersCmd.AddCommand(remindersScheduleCmd)
	rootCmd.AddCommand(remindersCmd)
}

func printReport(report reminders.Report) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("today: %s  dogs: %d  digests: %d\n", report.Today, report.Dogs, len(report.Digests))
	if len(report.Digests) == 0 {
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DOG\tLINES\tRECIPIENT\tDELIVERED\tFAILED")
	for _, d := range report.Digests {
		recipient := d.Recipient
		if recipient == "" {
			recipient = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			d.DogName, len(d.Lines), recipient, strings.Join(d.Delivered, ","), strings.Join(d.Failed, ","))
	}
	return w.Flush()
}
