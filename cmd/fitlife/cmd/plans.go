package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Dianagomez24/FrontFilLife/internal/form"
	"github.com/Dianagomez24/FrontFilLife/internal/model"
	"github.com/Dianagomez24/FrontFilLife/internal/store"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
)

func exerciseCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exercise",
		Aliases: []string{"ejercicio"},
		Short:   "Planes de ejercicio",
	}

	var active bool
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar planes de ejercicio",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans := store.NewExercisePlans(e.app.ExercisePlanService)
			if err := plans.Load(cmd.Context()); err != nil {
				return err
			}
			items := plans.Items()
			if active {
				items = plans.Active()
			}
			if len(items) == 0 {
				e.printf("No tienes planes de ejercicio\n")
				return nil
			}

			tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNOMBRE\tDIFICULTAD\tDURACIÓN\tEJERCICIOS\tESTADO")
			for _, p := range items {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d min\t%d\t%s\n", p.ID, p.Name, p.Difficulty.Label(), p.DurationMinutes, len(p.Exercises), status(p.Active))
			}
			return tw.Flush()
		},
	}
	list.Flags().BoolVar(&active, "active", false, "solo planes activos")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Ver un plan de ejercicio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := e.app.ExercisePlanService.ByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			e.printf("%s (%s)\n", p.Name, status(p.Active))
			e.printf("%s\n\n", p.Description)
			e.printf("Dificultad: %s  Duración: %d min  Creado: %s\n\n", p.Difficulty.Label(), p.DurationMinutes, ui.FormatDate(p.CreatedAt))
			for i, x := range p.Exercises {
				e.printf("%d. %s  %d x %s, descanso %s", i+1, x.Name, x.Sets, x.Reps, x.Rest)
				if x.Weight != nil {
					e.printf(", %s kg", ui.FormatNumber(*x.Weight))
				}
				if x.Duration != nil {
					e.printf(", %d s", *x.Duration)
				}
				e.printf("\n")
				if x.Notes != "" {
					e.printf("   %s\n", x.Notes)
				}
			}
			return nil
		},
	}

	var file string
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear un plan de ejercicio desde un archivo JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in model.ExercisePlan
			if err := readJSON(e, file, &in); err != nil {
				return err
			}

			draft := form.ExercisePlanDraftFromPlan(in)
			if errs := draft.Validate(); len(errs) > 0 {
				return formErrors(errs)
			}
			req, err := draft.CreateRequest()
			if err != nil {
				return err
			}

			created, err := store.NewExercisePlans(e.app.ExercisePlanService).Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			if created == nil {
				e.printf("Plan creado: %s\n", req.Name)
				return nil
			}
			e.printf("Plan creado: %s (id %d)\n", created.Name, created.ID)
			return nil
		},
	}
	create.Flags().StringVarP(&file, "file", "f", "", "archivo JSON del plan (- para stdin)")
	_ = create.MarkFlagRequired("file")

	cmd.AddCommand(list, show, create)
	cmd.AddCommand(toggleCmd(e, "plan de ejercicio", func(cmd *cobra.Command, id int64) (bool, error) {
		plans := store.NewExercisePlans(e.app.ExercisePlanService)
		if err := plans.Load(cmd.Context()); err != nil {
			return false, err
		}
		if err := plans.ToggleStatus(cmd.Context(), id); err != nil {
			return false, err
		}
		p, _ := plans.Find(id)
		return p.Active, nil
	}))
	cmd.AddCommand(deleteCmd(e, "plan de ejercicio", func(cmd *cobra.Command, id int64) error {
		return store.NewExercisePlans(e.app.ExercisePlanService).Delete(cmd.Context(), id)
	}))
	return cmd
}

func nutritionCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nutrition",
		Aliases: []string{"nutricion"},
		Short:   "Planes de nutrición",
	}

	var active bool
	list := &cobra.Command{
		Use:   "list",
		Short: "Listar planes de nutrición",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans := store.NewNutritionPlans(e.app.NutritionPlanService)
			if err := plans.Load(cmd.Context()); err != nil {
				return err
			}
			items := plans.Items()
			if active {
				items = plans.Active()
			}
			if len(items) == 0 {
				e.printf("No tienes planes de nutrición\n")
				return nil
			}

			tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNOMBRE\tCOMIDAS\tKCAL\tOBJETIVO\tESTADO")
			for _, p := range items {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%d\t%s\n", p.ID, p.Name, len(p.Meals), ui.FormatNumber(p.Calories()), p.TargetCalories, status(p.Active))
			}
			return tw.Flush()
		},
	}
	list.Flags().BoolVar(&active, "active", false, "solo planes activos")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Ver un plan de nutrición",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := e.app.NutritionPlanService.ByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			e.printf("%s (%s)\n", p.Name, status(p.Active))
			if p.Description != "" {
				e.printf("%s\n", p.Description)
			}
			e.printf("\nCalorías: %s", ui.FormatNumber(p.Calories()))
			if p.TargetCalories > 0 {
				e.printf(" de %s (%d%%)", ui.FormatNumber(p.TargetCalories), ui.Percent(p.Calories(), float64(p.TargetCalories)))
			}
			e.printf("\n\n")
			for _, m := range p.Meals {
				e.printf("%s", m.Name)
				if m.Schedule != "" {
					e.printf(" (%s)", m.Schedule)
				}
				e.printf("  %s kcal\n", ui.FormatNumber(m.Calories()))
				for _, f := range m.Foods {
					e.printf("  - %s", f.Name)
					if f.Quantity != "" {
						e.printf(", %s", f.Quantity)
					}
					e.printf("  %s kcal\n", ui.FormatNumber(f.Calories))
				}
			}
			return nil
		},
	}

	var file string
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear un plan de nutrición desde un archivo JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in model.NutritionPlan
			if err := readJSON(e, file, &in); err != nil {
				return err
			}

			draft := form.NutritionPlanDraftFromPlan(in)
			if errs := draft.Validate(); len(errs) > 0 {
				return formErrors(errs)
			}
			req, err := draft.CreateRequest()
			if err != nil {
				return err
			}

			created, err := store.NewNutritionPlans(e.app.NutritionPlanService).Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			if created == nil {
				e.printf("Plan creado: %s\n", req.Name)
				return nil
			}
			e.printf("Plan creado: %s (id %d)\n", created.Name, created.ID)
			return nil
		},
	}
	create.Flags().StringVarP(&file, "file", "f", "", "archivo JSON del plan (- para stdin)")
	_ = create.MarkFlagRequired("file")

	cmd.AddCommand(list, show, create)
	cmd.AddCommand(toggleCmd(e, "plan de nutrición", func(cmd *cobra.Command, id int64) (bool, error) {
		plans := store.NewNutritionPlans(e.app.NutritionPlanService)
		if err := plans.Load(cmd.Context()); err != nil {
			return false, err
		}
		if err := plans.ToggleStatus(cmd.Context(), id); err != nil {
			return false, err
		}
		p, _ := plans.Find(id)
		return p.Active, nil
	}))
	cmd.AddCommand(deleteCmd(e, "plan de nutrición", func(cmd *cobra.Command, id int64) error {
		return store.NewNutritionPlans(e.app.NutritionPlanService).Delete(cmd.Context(), id)
	}))
	return cmd
}

func toggleCmd(e *env, noun string, toggle func(cmd *cobra.Command, id int64) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Activar o desactivar un " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			active, err := toggle(cmd, id)
			if err != nil {
				return err
			}
			e.printf("Plan %s\n", strings.ToLower(status(active)))
			return nil
		},
	}
}

func deleteCmd(e *env, noun string, del func(cmd *cobra.Command, id int64) error) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar un " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := e.confirm(fmt.Sprintf("¿Eliminar el %s %d?", noun, id))
				if err != nil || !ok {
					return err
				}
			}
			if err := del(cmd, id); err != nil {
				return err
			}
			e.printf("Plan eliminado\n")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no pedir confirmación")
	return cmd
}

func status(active bool) string {
	if active {
		return "Activo"
	}
	return "Inactivo"
}

func readJSON(e *env, path string, v any) error {
	var r io.Reader = e.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: JSON inválido: %w", path, err)
	}
	return nil
}

// formErrors lists every field error, sorted by field path.
func formErrors(errs form.Errors) error {
	var lines []string
	for _, k := range slices.Sorted(maps.Keys(errs)) {
		lines = append(lines, fmt.Sprintf("  %s: %s", k, errs[k]))
	}
	return errors.New("El plan tiene errores:\n" + strings.Join(lines, "\n"))
}
