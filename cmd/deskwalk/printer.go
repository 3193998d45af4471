package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mmynk/deskwalk/internal/models"
	"github.com/mmynk/deskwalk/internal/service"
)

// printer renders results as aligned tables or as JSON.
type printer struct {
	w    io.Writer
	json bool
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) table(render func(tw *tabwriter.Writer)) error {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	render(tw)
	return tw.Flush()
}

func (p *printer) profile(profile *models.Profile) error {
	if p.json {
		return p.encode(profile)
	}
	return p.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Height\t%.1f in\n", profile.Height)
		fmt.Fprintf(tw, "Weight\t%.1f lbs\n", profile.Weight)
		fmt.Fprintf(tw, "Age\t%d\n", profile.Age)
		fmt.Fprintf(tw, "Gender\t%s\n", profile.Gender)
		fmt.Fprintf(tw, "Target weight\t%.1f lbs\n", profile.TargetWeight)
		fmt.Fprintf(tw, "Weekly goal\t%.1f lbs\n", profile.WeeklyWeightLossGoal)
		fmt.Fprintf(tw, "Target date\t%s\n", formatDate(profile.TargetDate))
	})
}

func (p *printer) weightEntries(entries []models.WeightEntry) error {
	if p.json {
		return p.encode(entries)
	}
	return p.table(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tDATE\tWEIGHT\tBODY FAT\tBMI")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%.1f\t%s\t%s\n",
				e.ID, formatDate(e.Date), e.Weight, optional(e.BodyFat, "%.1f%%"), optional(e.BMI, "%.1f"))
		}
	})
}

func (p *printer) walkSessions(sessions []models.WalkSession) error {
	if p.json {
		return p.encode(sessions)
	}
	return p.table(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tDATE\tHOURS\tMPH\tINCLINE\tEQUIPMENT\tMILES\tCALORIES")
		for _, s := range sessions {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.1f\t%.1f%%\t%s\t%.2f\t%.0f\n",
				s.ID, formatDate(s.Date), s.Duration, s.Speed, s.Incline, s.Equipment, s.MilesWalked, s.CaloriesBurned)
		}
	})
}

func (p *printer) milestones(milestones []models.Milestone) error {
	if p.json {
		return p.encode(milestones)
	}
	return p.table(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "ID\tDATE\tTYPE\tACHIEVED\tDESCRIPTION")
		for _, m := range milestones {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", m.ID, formatDate(m.Date), m.Type, m.Achieved, m.Description)
		}
	})
}

func (p *printer) dashboard(d *service.Dashboard) error {
	if p.json {
		return p.encode(d)
	}
	return p.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Current weight\t%.1f lbs\t", d.CurrentWeight)
		switch {
		case d.WeightLost > 0:
			fmt.Fprintf(tw, "lost %.1f lbs since start\n", d.WeightLost)
		case d.WeightLost < 0:
			fmt.Fprintf(tw, "gained %.1f lbs since start\n", -d.WeightLost)
		default:
			fmt.Fprintln(tw, "no change since start")
		}
		fmt.Fprintf(tw, "BMI\t%.1f\t%s\n", d.CurrentBMI, d.BMICategory)
		fmt.Fprintf(tw, "Miles walked\t%.1f\tacross %d walks\n", d.TotalMiles, d.TotalWalks)
		fmt.Fprintf(tw, "Calories burned\t%.0f\tover %.1f hours of walking\n", d.TotalCalories, d.TotalHours)
		if d.GoalAchieved {
			fmt.Fprintf(tw, "Goal\t%.1f lbs\tGoal achieved!\n", d.Profile.TargetWeight)
		} else {
			fmt.Fprintf(tw, "Goal\t%.1f lbs\t%.1f lbs to go (%.0f%%), target %s\n",
				d.Profile.TargetWeight, d.WeightRemaining, d.GoalProgress, formatDate(d.Profile.TargetDate))
		}
		if len(d.Weekly) > 0 {
			fmt.Fprintln(tw, "\nWEEK OF\tWALKS\tMILES\tCALORIES")
			for _, w := range d.Weekly {
				fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.0f\n", formatDate(w.WeekStart), w.Count, w.Miles, w.Calories)
			}
		}
	})
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func optional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}
