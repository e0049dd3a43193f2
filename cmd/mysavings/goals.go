package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mysavings/backend/internal/application/usecase/goal"
	"github.com/mysavings/backend/internal/domain/valueobject"
)

var (
	flagGoalName     string
	flagGoalTarget   string
	flagGoalDuration string
	flagGoalEndDate  string
	flagGoalReminder string

	flagSavingAmount string
	flagSavingDate   string
	flagSavingNote   string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List and manage savings goals",
	RunE:  runGoalsList,
}

var goalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all goals with their progress",
	RunE:  runGoalsList,
}

var goalsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a savings goal",
	RunE:  runGoalsCreate,
}

var goalsShowCmd = &cobra.Command{
	Use:   "show <goal-id>",
	Short: "Show a goal and its saving history",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsShow,
}

var goalsAddSavingCmd = &cobra.Command{
	Use:   "add-saving <goal-id>",
	Short: "Record a saving against a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsAddSaving,
}

func init() {
	goalsCreateCmd.Flags().StringVar(&flagGoalName, "name", "", "Goal name")
	goalsCreateCmd.Flags().StringVar(&flagGoalTarget, "target", "", "Target amount in whole rupees")
	goalsCreateCmd.Flags().StringVar(&flagGoalDuration, "months", "", "Duration in months")
	goalsCreateCmd.Flags().StringVar(&flagGoalEndDate, "end-date", "", "End date shown with the goal")
	goalsCreateCmd.Flags().StringVar(&flagGoalReminder, "reminder", "", "Reminder: first, fifteenth or last day of the month")

	goalsAddSavingCmd.Flags().StringVar(&flagSavingAmount, "amount", "", "Amount saved in whole rupees")
	goalsAddSavingCmd.Flags().StringVar(&flagSavingDate, "date", "", "Date of the saving")
	goalsAddSavingCmd.Flags().StringVar(&flagSavingNote, "note", "", "Description")

	goalsCmd.AddCommand(goalsListCmd, goalsCreateCmd, goalsShowCmd, goalsAddSavingCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoalsList(cmd *cobra.Command, _ []string) error {
	out, err := app.UseCases.ListGoals.Execute(cmd.Context(), goal.ListGoalsInput{})
	if err != nil {
		return err
	}

	if len(out.Goals) == 0 {
		fmt.Println("\n  No goals yet. Create one with `mysavings goals create`.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSAVED\tTARGET\tPROGRESS\tREMINDER")
	for _, g := range out.Goals {
		status := fmt.Sprintf("%d%%", g.Progress)
		if g.Achieved {
			status += " ✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			g.ID, g.Name,
			valueobject.FormatRupees(g.SavedAmount),
			valueobject.FormatRupees(g.TargetAmount),
			status,
			g.Reminder.Label(),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n  %s · %s saved overall (%d%%)\n",
		out.Summary.Insights,
		valueobject.FormatRupees(out.Summary.TotalSaved),
		out.Summary.OverallProgress,
	)
	return nil
}

func runGoalsCreate(cmd *cobra.Command, _ []string) error {
	out, err := app.UseCases.CreateGoal.Execute(cmd.Context(), goal.CreateGoalInput{
		Name:           flagGoalName,
		TargetAmount:   flagGoalTarget,
		DurationMonths: flagGoalDuration,
		EndDate:        flagGoalEndDate,
		Reminder:       flagGoalReminder,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Created goal %q (%s)\n", out.Goal.Name, out.Goal.ID)
	fmt.Printf("  Target %s over %d months, reminder: %s\n",
		valueobject.FormatRupees(out.Goal.TargetAmount),
		out.Goal.DurationMonths,
		out.Goal.Reminder.Label(),
	)
	return nil
}

func runGoalsShow(cmd *cobra.Command, args []string) error {
	goalID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid goal id %q", args[0])
	}

	out, err := app.UseCases.GetGoal.Execute(cmd.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		return err
	}
	g := out.Goal

	fmt.Printf("\n  %s\n", g.Name)
	fmt.Printf("  %s of %s saved (%d%%), %s to go\n",
		valueobject.FormatRupees(g.SavedAmount),
		valueobject.FormatRupees(g.TargetAmount),
		g.Progress,
		valueobject.FormatRupees(g.Remaining),
	)
	if g.EndDate != "" {
		fmt.Printf("  Ends %s\n", g.EndDate)
	}
	fmt.Println()

	if len(g.Entries) == 0 {
		fmt.Println("  No savings recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tDESCRIPTION")
	for _, e := range g.Entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Date, valueobject.FormatRupees(e.Amount), e.Description)
	}
	return w.Flush()
}

func runGoalsAddSaving(cmd *cobra.Command, args []string) error {
	goalID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid goal id %q", args[0])
	}

	out, err := app.UseCases.AddSaving.Execute(cmd.Context(), goal.AddSavingInput{
		GoalID:      goalID,
		Amount:      flagSavingAmount,
		Date:        flagSavingDate,
		Description: flagSavingNote,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Saved %s towards %q, now at %d%%\n",
		valueobject.FormatRupees(out.Entry.Amount),
		out.Goal.Name,
		out.Goal.Progress,
	)
	if out.Goal.Achieved {
		fmt.Println("  Goal achieved!")
	}
	return nil
}
