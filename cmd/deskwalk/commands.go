package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mmynk/deskwalk/internal/models"
	"github.com/mmynk/deskwalk/internal/service"
)

func dispatch(ctx context.Context, tracker *service.Tracker, out *printer, args []string) int {
	cmd, rest := args[0], args[1:]
	if cmd == "dashboard" {
		d, err := tracker.Dashboard(ctx)
		if err != nil {
			return exitCode(err)
		}
		return exitCode(out.dashboard(d))
	}

	if len(rest) == 0 {
		fmt.Fprintf(os.Stderr, "%s: missing subcommand\n", cmd)
		return 2
	}
	sub, rest := rest[0], rest[1:]

	switch cmd + " " + sub {
	case "profile set":
		return profileSet(ctx, tracker, out, rest)
	case "profile show":
		profile, err := tracker.Profile(ctx)
		if err != nil {
			return exitCode(err)
		}
		return exitCode(out.profile(profile))

	case "weight log":
		return weightLog(ctx, tracker, out, rest)
	case "weight list":
		entries, err := tracker.WeightEntries(ctx)
		if err != nil {
			return exitCode(err)
		}
		return exitCode(out.weightEntries(entries))
	case "weight delete":
		id, code := singleID(cmd, rest)
		if code != 0 {
			return code
		}
		entries, err := tracker.DeleteWeightEntry(ctx, id)
		if err != nil {
			return exitCode(err)
		}
		return exitCode(out.weightEntries(entries))

	case "walk log":
		return walkLog(ctx, tracker, out, rest)
	case "walk list":
		sessions, err := tracker.WalkSessions(ctx)
		if err != nil {
			return exitCode(err)
		}
		return exitCode(out.walkSessions(sessions))
	case "walk delete":
		id, code := singleID(cmd, rest)
		if code != 0 {
			return code
		}
		sessions, err := tracker.DeleteWalkSession(ctx, id)
		if err != nil {
			return exitCode(err)
		}
		return exitCode(out.walkSessions(sessions))

	case "milestone add":
		return milestoneAdd(ctx, tracker, out, rest)
	case "milestone list":
		milestones, err := tracker.Milestones(ctx)
		if err != nil {
			return exitCode(err)
		}
		return exitCode(out.milestones(milestones))
	case "milestone delete":
		id, code := singleID(cmd, rest)
		if code != 0 {
			return code
		}
		milestones, err := tracker.DeleteMilestone(ctx, id)
		if err != nil {
			return exitCode(err)
		}
		return exitCode(out.milestones(milestones))
	}

	fmt.Fprintf(os.Stderr, "unknown command: %s %s\n", cmd, sub)
	return 2
}

func singleID(cmd string, args []string) (string, int) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: deskwalk %s delete <id>\n", cmd)
		return "", 2
	}
	return args[0], 0
}

func profileSet(ctx context.Context, tracker *service.Tracker, out *printer, args []string) int {
	fs := flag.NewFlagSet("profile set", flag.ContinueOnError)
	height := fs.Float64("height", 0, "height in inches")
	weight := fs.Float64("weight", 0, "current weight in lbs")
	age := fs.Int("age", 0, "age in years")
	gender := fs.String("gender", string(models.GenderOther), "male, female or other")
	target := fs.Float64("target", 0, "target weight in lbs")
	weekly := fs.Float64("weekly", 1, "weekly weight-loss goal in lbs")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	profile, err := tracker.SetupProfile(ctx, service.ProfileInput{
		Height:               *height,
		Weight:               *weight,
		Age:                  *age,
		Gender:               models.Gender(*gender),
		TargetWeight:         *target,
		WeeklyWeightLossGoal: *weekly,
	})
	if err != nil {
		return exitCode(err)
	}
	return exitCode(out.profile(profile))
}

func weightLog(ctx context.Context, tracker *service.Tracker, out *printer, args []string) int {
	fs := flag.NewFlagSet("weight log", flag.ContinueOnError)
	id := fs.String("id", "", "edit the entry with this ID")
	day := fs.String("date", "", "measurement date (YYYY-MM-DD, default today)")
	weight := fs.Float64("weight", 0, "weight in lbs")
	bodyFat := fs.String("body-fat", "", "optional body-fat percentage")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	date, err := parseDate(*day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	in := service.WeightInput{ID: *id, Date: date, Weight: *weight}
	if *bodyFat != "" {
		v, err := strconv.ParseFloat(*bodyFat, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -body-fat %q\n", *bodyFat)
			return 2
		}
		in.BodyFat = &v
	}

	entries, err := tracker.LogWeight(ctx, in)
	if err != nil {
		return exitCode(err)
	}
	return exitCode(out.weightEntries(entries))
}

func walkLog(ctx context.Context, tracker *service.Tracker, out *printer, args []string) int {
	fs := flag.NewFlagSet("walk log", flag.ContinueOnError)
	id := fs.String("id", "", "edit the session with this ID")
	day := fs.String("date", "", "session date (YYYY-MM-DD, default today)")
	duration := fs.Float64("duration", 0, "duration in hours")
	speed := fs.Float64("speed", 0, "average speed in mph")
	equipment := fs.String("equipment", "", "treadmill or walking pad used")
	incline := fs.Float64("incline", 0, "incline in percent")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	date, err := parseDate(*day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	sessions, err := tracker.LogWalk(ctx, service.WalkInput{
		ID:        *id,
		Date:      date,
		Duration:  *duration,
		Speed:     *speed,
		Equipment: *equipment,
		Incline:   *incline,
	})
	if err != nil {
		return exitCode(err)
	}
	return exitCode(out.walkSessions(sessions))
}

func milestoneAdd(ctx context.Context, tracker *service.Tracker, out *printer, args []string) int {
	fs := flag.NewFlagSet("milestone add", flag.ContinueOnError)
	id := fs.String("id", "", "edit the milestone with this ID")
	day := fs.String("date", "", "milestone date (YYYY-MM-DD, default today)")
	kind := fs.String("type", "", "weight, consistency or distance")
	description := fs.String("description", "", "what was achieved")
	achieved := fs.Bool("achieved", true, "whether the milestone has been reached")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	date, err := parseDate(*day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	milestones, err := tracker.RecordMilestone(ctx, service.MilestoneInput{
		ID:          *id,
		Date:        date,
		Type:        models.MilestoneType(*kind),
		Description: *description,
		Achieved:    *achieved,
	})
	if err != nil {
		return exitCode(err)
	}
	return exitCode(out.milestones(milestones))
}

// parseDate parses a local calendar date, defaulting to today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		y, m, d := time.Now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}
