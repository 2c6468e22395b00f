package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/healthtrackapp/healthtrack/internal/goal"
)

func (a *App) setGoals(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-goals", flag.ContinueOnError)
	daily := fs.Int("daily", 0, "daily calorie goal (required)")
	weekly := fs.Int("weekly", 0, "weekly calorie goal (required)")
	protein := fs.Float64("protein", -1, "daily protein goal in grams")
	carbs := fs.Float64("carbs", -1, "daily carb goal in grams")
	fats := fs.Float64("fats", -1, "daily fat goal in grams")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: set-goals [flags] <user>")
	}

	setFlags := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if !setFlags["daily"] || !setFlags["weekly"] {
		return fmt.Errorf("both --daily and --weekly are required")
	}

	u, err := a.resolveUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	dto := goal.SetGoalsDTO{
		DailyCalories:  *daily,
		WeeklyCalories: *weekly,
	}
	if setFlags["protein"] {
		dto.ProteinGoal = protein
	}
	if setFlags["carbs"] {
		dto.CarbGoal = carbs
	}
	if setFlags["fats"] {
		dto.FatGoal = fats
	}

	g, err := a.goals.SetGoals(ctx, u.ID, dto)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Goals set for %s:\n", u.Name)
	fmt.Fprintf(a.out, "  Calories: %d daily / %d weekly\n", g.DailyCalories, g.WeeklyCalories)
	if g.ProteinGoal != nil {
		fmt.Fprintf(a.out, "  Protein: %.1fg\n", *g.ProteinGoal)
	}
	if g.CarbGoal != nil {
		fmt.Fprintf(a.out, "  Carbs: %.1fg\n", *g.CarbGoal)
	}
	if g.FatGoal != nil {
		fmt.Fprintf(a.out, "  Fats: %.1fg\n", *g.FatGoal)
	}
	return nil
}

func (a *App) showGoals(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: goals <user>")
	}

	u, err := a.resolveUser(ctx, args[0])
	if err != nil {
		return err
	}

	g, err := a.goals.GetGoals(ctx, u.ID)
	if err != nil {
		return err
	}
	if g == nil {
		fmt.Fprintf(a.out, "No goals set for %s\n", u.Name)
		return nil
	}

	fmt.Fprintf(a.out, "Goals for %s:\n", u.Name)
	fmt.Fprintf(a.out, "  Calories: %d daily / %d weekly\n", g.DailyCalories, g.WeeklyCalories)
	if g.ProteinGoal != nil {
		fmt.Fprintf(a.out, "  Protein: %.1fg\n", *g.ProteinGoal)
	}
	if g.CarbGoal != nil {
		fmt.Fprintf(a.out, "  Carbs: %.1fg\n", *g.CarbGoal)
	}
	if g.FatGoal != nil {
		fmt.Fprintf(a.out, "  Fats: %.1fg\n", *g.FatGoal)
	}
	return nil
}
