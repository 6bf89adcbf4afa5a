package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dianagomez24/FrontFilLife/internal/questionnaire"
	"github.com/Dianagomez24/FrontFilLife/internal/service"
	"github.com/Dianagomez24/FrontFilLife/internal/session"
	"github.com/Dianagomez24/FrontFilLife/internal/ui"
	"github.com/Dianagomez24/FrontFilLife/internal/ui/pages"
)

func healthCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "health",
		Aliases: []string{"salud"},
		Short:   "Perfil de salud",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Ver el perfil de salud",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := e.app.HealthDataService.Get(cmd.Context())
			if errors.Is(err, service.ErrNoHealthProfile) {
				e.printf("Aún no has completado el cuestionario. Ejecuta: fitlife health questionnaire\n")
				return nil
			}
			if err != nil {
				return err
			}
			printHealth(e, questionnaire.Resume(profile).Draft)
			return nil
		},
	}

	quiz := &cobra.Command{
		Use:     "questionnaire",
		Aliases: []string{"cuestionario"},
		Short:   "Completar o editar el cuestionario de salud",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			profile, err := e.app.HealthDataService.Get(ctx)
			if err != nil && !errors.Is(err, service.ErrNoHealthProfile) {
				return err
			}

			q := questionnaire.Resume(profile)
			if profile != nil {
				e.printf("Ya tienes un perfil de salud. Las respuestas actuales aparecen entre corchetes.\n")
			}
			q.Edit()

			for q.Step() <= questionnaire.LastStep {
				if err := askStep(e, q); err != nil {
					return err
				}
				if q.Step() == questionnaire.LastStep {
					break
				}
				var incomplete *questionnaire.IncompleteError
				if err := q.Next(); errors.As(err, &incomplete) {
					e.printf("Completa los campos: %s\n", strings.Join(incomplete.Fields, ", "))
				}
			}

			saved, err := q.Submit(ctx, e.app.HealthDataService)
			var incomplete *questionnaire.IncompleteError
			if errors.As(err, &incomplete) {
				return fmt.Errorf("Faltan campos obligatorios: %s", strings.Join(incomplete.Fields, ", "))
			}
			if err != nil {
				return errors.New("Error al guardar los datos de salud")
			}

			s, err := e.app.Sessions.Current(ctx, session.CLIKey)
			if err == nil && !s.User.HasHealthData {
				user := *s.User
				user.HasHealthData = true
				_ = e.app.Sessions.UpdateUser(ctx, session.CLIKey, user)
			}

			e.printf("\nPerfil guardado\n\n")
			printHealth(e, questionnaire.Resume(saved).Draft)
			return nil
		},
	}

	cmd.AddCommand(show, quiz)
	return cmd
}

// askStep prompts for every field of the current step, keeping the draft's answer as
// the default.
func askStep(e *env, q *questionnaire.Questionnaire) error {
	d := &q.Draft
	var err error

	switch q.Step() {
	case questionnaire.StepBasics:
		e.printf("\n1. Datos básicos\n")
		if d.Age, err = e.ask("Edad (años)", d.Age); err != nil {
			return err
		}
		if d.Sex, err = e.choose("Sexo", questionnaire.SexOptions, d.Sex); err != nil {
			return err
		}
		if d.Weight, err = e.ask("Peso (kg)", d.Weight); err != nil {
			return err
		}
		if d.Height, err = e.ask("Altura (cm)", d.Height); err != nil {
			return err
		}
		if bmi, ok := d.BMI(); ok {
			e.printf("IMC: %s (%s)\n", ui.FormatNumber(bmi), questionnaire.BMICategory(bmi))
		}
	case questionnaire.StepActivity:
		e.printf("\n2. Actividad y objetivos\n")
		if d.ActivityLevel, err = e.choose("Nivel de actividad", questionnaire.ActivityOptions, d.ActivityLevel); err != nil {
			return err
		}
		if d.Goal, err = e.choose("Objetivo", questionnaire.GoalOptions, d.Goal); err != nil {
			return err
		}
		if d.Experience, err = e.choose("Experiencia", questionnaire.ExperienceOptions, d.Experience); err != nil {
			return err
		}
	case questionnaire.StepHealth:
		e.printf("\n3. Salud\n")
		if d.Conditions, err = askConditions(e, d.Conditions); err != nil {
			return err
		}
		if d.Limitations, err = e.ask("Limitaciones físicas", d.Limitations); err != nil {
			return err
		}
		if d.Medications, err = e.ask("Medicamentos", d.Medications); err != nil {
			return err
		}
		if d.Injuries, err = e.ask("Lesiones", d.Injuries); err != nil {
			return err
		}
	case questionnaire.StepAvailability:
		e.printf("\n4. Disponibilidad\n")
		if d.TimeAvailability, err = e.choose("Tiempo por sesión", questionnaire.AvailabilityOptions, d.TimeAvailability); err != nil {
			return err
		}
		if d.Location, err = e.choose("Lugar de entrenamiento", questionnaire.LocationOptions, d.Location); err != nil {
			return err
		}
	}
	return nil
}

// askConditions takes a comma separated list of option numbers. Picking
// "Ninguna de las anteriores" clears the others.
func askConditions(e *env, current []string) ([]string, error) {
	e.printf("Condiciones médicas (números separados por comas, vacío para ninguna)\n")
	var def []string
	for i, c := range questionnaire.ConditionOptions {
		e.printf("  %d) %s\n", i+1, c)
		if slices.Contains(current, c) {
			def = append(def, strconv.Itoa(i+1))
		}
	}

	answer, err := e.ask("Opciones", strings.Join(def, ","))
	if err != nil {
		return nil, err
	}

	var picked []string
	for _, part := range strings.Split(answer, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > len(questionnaire.ConditionOptions) {
			continue
		}
		c := questionnaire.ConditionOptions[n-1]
		if c == questionnaire.NoCondition {
			return []string{c}, nil
		}
		if !slices.Contains(picked, c) {
			picked = append(picked, c)
		}
	}
	return picked, nil
}

func printHealth(e *env, d questionnaire.Draft) {
	for _, row := range pages.HealthSummary(d) {
		e.printf("%-24s %s\n", row.Label+":", row.Value)
	}
	if bmi, ok := d.BMI(); ok {
		e.printf("%-24s %s (%s)\n", "IMC:", ui.FormatNumber(bmi), questionnaire.BMICategory(bmi))
	}
}
