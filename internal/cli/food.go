package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/healthtrackapp/healthtrack/internal/foodlog"
	"github.com/healthtrackapp/healthtrack/internal/mealplan"
	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

// parseDateFlag turns an optional --date value into a Date, defaulting to
// today.
func parseDateFlag(s string) (util.Date, error) {
	if s == "" {
		return util.Today(), nil
	}
	return util.ParseDate(s)
}

func (a *App) addFood(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-food", flag.ContinueOnError)
	dateStr := fs.String("date", "", "date as YYYY-MM-DD (default today)")
	mealType := fs.String("meal-type", "", "breakfast, lunch, dinner or snack")
	notes := fs.String("notes", "", "optional notes")
	protein := fs.Float64("protein", -1, "protein in grams")
	carbs := fs.Float64("carbs", -1, "carbs in grams")
	fats := fs.Float64("fats", -1, "fats in grams")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("usage: add-food [flags] <user> <food> <calories>")
	}

	u, err := a.resolveUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	calories, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("invalid calories %q", fs.Arg(2))
	}
	day, err := parseDateFlag(*dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q", *dateStr)
	}

	dto := foodlog.LogMealDTO{
		FoodName: fs.Arg(1),
		Calories: calories,
		Notes:    *notes,
		Date:     &day,
	}
	if *protein >= 0 {
		dto.Protein = protein
	}
	if *carbs >= 0 {
		dto.Carbs = carbs
	}
	if *fats >= 0 {
		dto.Fats = fats
	}

	var entry *foodlog.FoodEntryResponse
	if *mealType != "" {
		mdto := mealplan.LogMealDTO{
			FoodName: dto.FoodName,
			Calories: dto.Calories,
			MealType: *mealType,
			Notes:    dto.Notes,
			Date:     dto.Date,
			Protein:  dto.Protein,
			Carbs:    dto.Carbs,
			Fats:     dto.Fats,
		}
		entry, err = a.planner.LogMeal(ctx, u.ID, mdto)
	} else {
		entry, err = a.logs.LogMeal(ctx, u.ID, dto)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged %s (%d cal) for %s on %s (entry %d)\n",
		entry.FoodName, entry.Calories, u.Name, entry.Date, entry.ID)
	return nil
}

func (a *App) listFood(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	dateStr := fs.String("date", "", "single day as YYYY-MM-DD (default today)")
	startStr := fs.String("start", "", "range start as YYYY-MM-DD")
	endStr := fs.String("end", "", "range end as YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: list [flags] <user>")
	}

	u, err := a.resolveUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	var entries []foodlog.FoodEntryResponse
	if *startStr != "" || *endStr != "" {
		start, err := util.ParseDate(*startStr)
		if err != nil {
			return fmt.Errorf("invalid start date %q", *startStr)
		}
		end, err := util.ParseDate(*endStr)
		if err != nil {
			return fmt.Errorf("invalid end date %q", *endStr)
		}
		entries, err = a.logs.GetLogsInRange(ctx, u.ID, start, end)
		if err != nil {
			return err
		}
	} else {
		day, err := parseDateFlag(*dateStr)
		if err != nil {
			return fmt.Errorf("invalid date %q", *dateStr)
		}
		entries, err = a.logs.GetDailyLogs(ctx, u.ID, day)
		if err != nil {
			return err
		}
	}

	a.printEntries(entries)
	return nil
}

func (a *App) recentFood(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("recent", flag.ContinueOnError)
	limit := fs.Int("limit", 10, "number of entries")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: recent [flags] <user>")
	}

	u, err := a.resolveUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	entries, err := a.logs.GetRecentLogs(ctx, u.ID, *limit)
	if err != nil {
		return err
	}

	a.printEntries(entries)
	return nil
}

func (a *App) updateFood(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-food", flag.ContinueOnError)
	food := fs.String("food", "", "new food name")
	caloriesStr := fs.String("calories", "", "new calorie count")
	dateStr := fs.String("date", "", "new date as YYYY-MM-DD")
	mealType := fs.String("meal-type", "", "new meal type")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: update-food [flags] <user> <entry-id>")
	}

	u, err := a.resolveUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	entryID, err := strconv.ParseUint(fs.Arg(1), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q", fs.Arg(1))
	}

	var dto foodlog.UpdateEntryDTO
	if *food != "" {
		dto.FoodName = food
	}
	if *caloriesStr != "" {
		calories, err := strconv.Atoi(*caloriesStr)
		if err != nil {
			return fmt.Errorf("invalid calories %q", *caloriesStr)
		}
		dto.Calories = &calories
	}
	if *dateStr != "" {
		day, err := util.ParseDate(*dateStr)
		if err != nil {
			return fmt.Errorf("invalid date %q", *dateStr)
		}
		dto.Date = &day
	}
	if *mealType != "" {
		dto.MealType = mealType
	}

	entry, err := a.logs.UpdateEntry(ctx, uint(entryID), u.ID, dto)
	if err != nil {
		return err
	}
	if entry == nil {
		fmt.Fprintf(a.out, "Entry %d not found for %s\n", entryID, u.Name)
		return nil
	}

	fmt.Fprintf(a.out, "Updated entry %d: %s (%d cal) on %s\n",
		entry.ID, entry.FoodName, entry.Calories, entry.Date)
	return nil
}

func (a *App) deleteFood(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: delete-food <user> <entry-id>")
	}

	u, err := a.resolveUser(ctx, args[0])
	if err != nil {
		return err
	}
	entryID, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q", args[1])
	}

	deleted, err := a.logs.DeleteEntry(ctx, uint(entryID), u.ID)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintf(a.out, "Entry %d not found for %s\n", entryID, u.Name)
		return nil
	}

	fmt.Fprintf(a.out, "Deleted entry %d\n", entryID)
	return nil
}

func (a *App) printEntries(entries []foodlog.FoodEntryResponse) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No entries found")
		return
	}
	for _, e := range entries {
		line := fmt.Sprintf("%d\t%s\t%s\t%d cal", e.ID, e.Date, e.FoodName, e.Calories)
		if e.MealType != "" {
			line += "\t" + e.MealType
		}
		fmt.Fprintln(a.out, line)
	}
}
