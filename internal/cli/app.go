package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/healthtrackapp/healthtrack/internal/config"
	"github.com/healthtrackapp/healthtrack/internal/container"
	"github.com/healthtrackapp/healthtrack/internal/foodlog"
	"github.com/healthtrackapp/healthtrack/internal/goal"
	"github.com/healthtrackapp/healthtrack/internal/mealplan"
	"github.com/healthtrackapp/healthtrack/internal/user"
)

// App is the command-line surface. Commands resolve users by name and call
// straight into the service layer over a local SQLite store.
type App struct {
	users   user.Service
	logs    foodlog.Service
	goals   goal.Service
	planner mealplan.Service
	out     io.Writer
}

func NewApp(dbPath string) (*App, error) {
	c, err := container.New(&config.Config{
		DBDriver: config.DriverSQLite,
		DBDSN:    dbPath,
		LogLevel: "warn",
	})
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", dbPath, err)
	}

	// Keep stdout clean for command output; logs go next to the store file.
	logPath := filepath.Join(filepath.Dir(dbPath), "healthtrack.log")
	if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		config.SetOutput(f)
	}

	return &App{
		users:   c.UserContainer.Service,
		logs:    c.FoodLogContainer.Service,
		goals:   c.GoalContainer.Service,
		planner: c.MealPlanContainer.Service,
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "create-user":
		return a.createUser(ctx, rest)
	case "users":
		return a.listUsers(ctx)
	case "add-food":
		return a.addFood(ctx, rest)
	case "list":
		return a.listFood(ctx, rest)
	case "recent":
		return a.recentFood(ctx, rest)
	case "update-food":
		return a.updateFood(ctx, rest)
	case "delete-food":
		return a.deleteFood(ctx, rest)
	case "set-goals":
		return a.setGoals(ctx, rest)
	case "goals":
		return a.showGoals(ctx, rest)
	case "daily-report":
		return a.dailyReport(ctx, rest)
	case "weekly-report":
		return a.weeklyReport(ctx, rest)
	case "weekly-nutrition":
		return a.weeklyNutrition(ctx, rest)
	case "suggest-plan":
		return a.suggestPlan(ctx, rest)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, `Usage: healthtrack [--db path] <command> [flags] [args]

Commands:
  create-user <name>                     create a new user
  users                                  list users
  add-food [flags] <user> <food> <cal>   log a food entry
  list [flags] <user>                    list entries for a day or range
  recent [flags] <user>                  most recent entries
  update-food [flags] <user> <entry-id>  update an entry
  delete-food <user> <entry-id>          delete an entry
  set-goals [flags] <user>               set or update goals
  goals <user>                           show goals
  daily-report [flags] <user>            daily progress report
  weekly-report [flags] <user>           weekly progress report
  weekly-nutrition [flags] <user>        per-day weekly summary
  suggest-plan [flags] <user>            suggest a meal plan

Run a command with -h for its flags.`)
}

// resolveUser maps a user name to its record, the way every command
// addresses users.
func (a *App) resolveUser(ctx context.Context, name string) (*user.UserResponse, error) {
	u, err := a.users.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", name, err)
	}
	return u, nil
}
