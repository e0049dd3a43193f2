package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mysavings/backend/internal/application/usecase/analytics"
	chatuc "github.com/mysavings/backend/internal/application/usecase/chat"
	entitlementuc "github.com/mysavings/backend/internal/application/usecase/entitlement"
	"github.com/mysavings/backend/internal/application/usecase/profile"
	"github.com/mysavings/backend/internal/application/usecase/reminder"
	"github.com/mysavings/backend/internal/domain/valueobject"
)

var (
	flagProfileName  string
	flagProfileEmail string
	flagReminderDay  string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total savings and overall progress",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := app.UseCases.GetSummary.Execute(cmd.Context(), analytics.GetSummaryInput{})
		if err != nil {
			return err
		}
		s := out.Summary
		fmt.Printf("\n  %s\n", s.Insights)
		fmt.Printf("  Total saved      %s\n", valueobject.FormatRupees(s.TotalSaved))
		fmt.Printf("  Overall progress %d%%\n", s.OverallProgress)
		fmt.Printf("  Achieved         %d of %d\n", s.AchievedCount, s.GoalCount)
		return nil
	},
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade to the Premium plan for unlimited goals",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := app.UseCases.Upgrade.Execute(cmd.Context(), entitlementuc.UpgradeInput{})
		if err != nil {
			return err
		}
		if out.AlreadyPremium {
			fmt.Println("  You are already on Premium.")
			return nil
		}
		fmt.Println("  Upgraded to Premium. You can now create unlimited goals.")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the profile used for reminders",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagProfileName == "" && flagProfileEmail == "" {
			out, err := app.UseCases.GetProfile.Execute(cmd.Context(), profile.GetProfileInput{})
			if err != nil {
				return err
			}
			fmt.Printf("  %s <%s>\n", out.Profile.Name, out.Profile.Email)
			return nil
		}

		current, err := app.UseCases.GetProfile.Execute(cmd.Context(), profile.GetProfileInput{})
		if err != nil {
			return err
		}
		name, email := current.Profile.Name, current.Profile.Email
		if flagProfileName != "" {
			name = flagProfileName
		}
		if flagProfileEmail != "" {
			email = flagProfileEmail
		}
		out, err := app.UseCases.UpdateProfile.Execute(cmd.Context(), profile.UpdateProfileInput{Name: name, Email: email})
		if err != nil {
			return err
		}
		fmt.Printf("  Profile saved: %s <%s>\n", out.Profile.Name, out.Profile.Email)
		return nil
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the savings assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if _, err := app.UseCases.OpenChat.Execute(ctx, chatuc.OpenChatInput{}); err != nil {
			return err
		}
		if _, err := app.UseCases.SendMessage.Execute(ctx, chatuc.SendMessageInput{Text: strings.Join(args, " ")}); err != nil {
			return err
		}
		app.ChatSession.Wait()

		out, err := app.UseCases.GetTranscript.Execute(ctx, chatuc.GetTranscriptInput{})
		if err != nil {
			return err
		}
		if n := len(out.Messages); n > 0 {
			fmt.Printf("\n  %s\n", out.Messages[n-1].Text)
		}
		return nil
	},
}

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Reminder email commands",
}

var remindersDispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Queue and send the reminder emails due on a day",
	RunE: func(cmd *cobra.Command, _ []string) error {
		day := time.Now()
		if flagReminderDay != "" {
			parsed, err := time.Parse(time.DateOnly, flagReminderDay)
			if err != nil {
				return fmt.Errorf("invalid --day %q, expected YYYY-MM-DD", flagReminderDay)
			}
			day = parsed
		}

		out, err := app.UseCases.DispatchReminder.Execute(cmd.Context(), reminder.DispatchRemindersInput{Day: day})
		if err != nil {
			return err
		}
		if out.NoRecipient {
			fmt.Println("  No email on the profile. Set one with `mysavings profile --email`.")
			return nil
		}

		app.EmailWorker.ProcessNow(cmd.Context())
		fmt.Printf("  %d goals due, %d reminders sent, %d already sent\n", out.Due, out.Queued, out.Duplicates)
		return nil
	},
}

func init() {
	profileCmd.Flags().StringVar(&flagProfileName, "name", "", "Display name")
	profileCmd.Flags().StringVar(&flagProfileEmail, "email", "", "Email address for reminders")
	remindersDispatchCmd.Flags().StringVar(&flagReminderDay, "day", "", "Day to dispatch for, YYYY-MM-DD (default today)")

	remindersCmd.AddCommand(remindersDispatchCmd)
	rootCmd.AddCommand(summaryCmd, upgradeCmd, profileCmd, askCmd, remindersCmd)
}
