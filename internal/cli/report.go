package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/healthtrackapp/healthtrack/internal/mealplan"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

const barWidth = 20

// progressBar renders a fixed-width bar from the capped percentage.
func progressBar(pct float64) string {
	filled := int(pct / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

// startOfWeek returns the Monday of the week containing d.
func startOfWeek(d util.Date) util.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

func (a *App) dailyReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("daily-report", flag.ContinueOnError)
	dateStr := fs.String("date", "", "date as YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: daily-report [flags] <user>")
	}

	u, err := a.resolveUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	day, err := parseDateFlag(*dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q", *dateStr)
	}

	p, err := a.goals.GetDailyProgress(ctx, u.ID, day)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Daily report for %s (%s)\n", u.Name, p.Date)
	if p.DailyGoal == nil {
		fmt.Fprintf(a.out, "  Calories: %d (no goal set)\n", p.TotalCalories)
		return nil
	}

	fmt.Fprintf(a.out, "  Calories: %d / %d\n", p.TotalCalories, *p.DailyGoal)
	if p.Remaining != nil {
		fmt.Fprintf(a.out, "  Remaining: %d\n", *p.Remaining)
	}
	if p.Percentage != nil {
		fmt.Fprintf(a.out, "  Progress: %s %.2f%%\n", progressBar(*p.Percentage), *p.Percentage)
	}
	return nil
}

func (a *App) weeklyReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("weekly-report", flag.ContinueOnError)
	startStr := fs.String("start", "", "week start as YYYY-MM-DD (default Monday of this week)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: weekly-report [flags] <user>")
	}

	u, err := a.resolveUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	start := startOfWeek(util.Today())
	if *startStr != "" {
		start, err = util.ParseDate(*startStr)
		if err != nil {
			return fmt.Errorf("invalid start date %q", *startStr)
		}
	}

	p, err := a.goals.GetWeeklyProgress(ctx, u.ID, start)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Weekly report for %s (%s to %s)\n", u.Name, p.StartDate, p.EndDate)
	if p.WeeklyGoal == nil {
		fmt.Fprintf(a.out, "  Calories: %d (no goal set)\n", p.TotalCalories)
		return nil
	}

	fmt.Fprintf(a.out, "  Calories: %d / %d\n", p.TotalCalories, *p.WeeklyGoal)
	if p.Remaining != nil {
		fmt.Fprintf(a.out, "  Remaining: %d\n", *p.Remaining)
	}
	if p.Percentage != nil {
		fmt.Fprintf(a.out, "  Progress: %s %.2f%%\n", progressBar(*p.Percentage), *p.Percentage)
	}
	return nil
}

func (a *App) weeklyNutrition(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("weekly-nutrition", flag.ContinueOnError)
	startStr := fs.String("start", "", "week start as YYYY-MM-DD (default Monday of this week)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: weekly-nutrition [flags] <user>")
	}

	u, err := a.resolveUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	start := startOfWeek(util.Today())
	if *startStr != "" {
		start, err = util.ParseDate(*startStr)
		if err != nil {
			return fmt.Errorf("invalid start date %q", *startStr)
		}
	}

	days, err := a.planner.GetWeeklyNutrition(ctx, u.ID, start)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Weekly nutrition for %s\n", u.Name)
	for _, d := range days {
		types := "-"
		if len(d.MealTypes) > 0 {
			types = strings.Join(d.MealTypes, ", ")
		}
		fmt.Fprintf(a.out, "  %s\t%d cal\t%d entries\t%s\n",
			d.Date, d.TotalCalories, d.MealCount, types)
	}
	return nil
}

func (a *App) suggestPlan(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("suggest-plan", flag.ContinueOnError)
	dateStr := fs.String("date", "", "date as YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: suggest-plan [flags] <user>")
	}

	u, err := a.resolveUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	day, err := parseDateFlag(*dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q", *dateStr)
	}

	plan, err := a.planner.SuggestForDate(ctx, u.ID, day)
	if err != nil {
		if errors.Is(err, mealplan.ErrGoalNotSet) {
			fmt.Fprintf(a.out, "No goals set for %s; set them with set-goals first\n", u.Name)
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Suggested plan for %s (%s):\n", u.Name, day)
	printSuggestion(a, "breakfast", plan.Breakfast)
	printSuggestion(a, "lunch", plan.Lunch)
	printSuggestion(a, "dinner", plan.Dinner)
	printSuggestion(a, "snack", plan.Snack)
	return nil
}

func printSuggestion(a *App, label string, s mealplan.MealSuggestion) {
	fmt.Fprintf(a.out, "  %-10s %s (~%d cal)\n", label+":", s.Suggestion, s.EstimatedCalories)
}
