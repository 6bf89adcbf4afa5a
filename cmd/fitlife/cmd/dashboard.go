package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/session"
	"github.com/Dianagomez24/FrontFilLife/internal/store"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
)

func dashboardCmd(e *env) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"panel"},
		Short:   "Resumen de planes y actividad",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := e.app.Sessions.Current(ctx, session.CLIKey)
			if err != nil {
				return err
			}

			d := store.NewDashboard(e.app.ExercisePlanService, e.app.NutritionPlanService, e.app.WearableService)
			o, err := d.Load(ctx)
			if err != nil {
				return err
			}

			if date != "" {
				day, err := time.ParseInLocation(time.DateOnly, date, time.Local)
				if err != nil {
					return fmt.Errorf("fecha inválida %q, usa AAAA-MM-DD", date)
				}
				o.Metrics, err = e.app.WearableService.ByDate(ctx, day)
				if err != nil {
					e.printf("No hay datos de actividad para %s\n\n", date)
				}
			}

			e.printf("Hola, %s\n\n", ui.TitleName(s.User.Name))
			if !s.User.HasHealthData {
				e.printf("Completa tu cuestionario de salud: fitlife health questionnaire\n\n")
			}

			st := o.Stats
			tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Planes de ejercicio\t%d\t(%d activos, %d ejercicios)\n", st.TotalExercisePlans, st.ActiveExercisePlans, st.TotalExercises)
			fmt.Fprintf(tw, "Planes de nutrición\t%d\t(%d activos, %d comidas)\n", st.TotalNutritionPlans, st.ActiveNutritionPlans, st.TotalMeals)
			fmt.Fprintf(tw, "Calorías planificadas\t%s\tkcal\n", ui.FormatNumber(st.TotalCalories))
			fmt.Fprintf(tw, "Progreso\t%d%%\t\n", st.ProgressPercentage)
			if err := tw.Flush(); err != nil {
				return err
			}

			if o.Metrics != nil {
				printMetrics(e, o.Metrics)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "día de la actividad (AAAA-MM-DD), hoy por defecto")
	return cmd
}

func printMetrics(e *env, m *model.DailyMetrics) {
	t := m.Totals
	e.printf("\nActividad %s\n", m.Date)
	e.printf("  Consumidas %s kcal, quemadas %s kcal, balance %s kcal, objetivo %s kcal\n",
		ui.FormatNumber(t.IntakeCalories), ui.FormatNumber(t.BurnedCalories), ui.FormatNumber(t.NetCalories), ui.FormatNumber(m.Profile.GoalCalories))
	e.printf("  Proteína %s g, carbohidratos %s g, grasas %s g\n",
		ui.FormatNumber(t.ProteinG), ui.FormatNumber(t.CarbsG), ui.FormatNumber(t.FatG))

	if len(m.FoodDiary) == 0 {
		return
	}
	e.printf("\n")
	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	for _, f := range m.FoodDiary {
		fmt.Fprintf(tw, "  %s\t%s\t%d kcal\n", f.Time, f.Item, f.Calories)
	}
	_ = tw.Flush()
}
