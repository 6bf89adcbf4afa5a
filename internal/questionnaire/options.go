package questionnaire

type Option struct {
	Value       string
	Label       string
	Description string
}

var SexOptions = []Option{
	{Value: "masculino", Label: "Masculino"},
	{Value: "femenino", Label: "Femenino"},
	{Value: "otro", Label: "Otro"},
}

var ActivityOptions = []Option{
	{Value: "sedentario", Label: "Sedentario", Description: "Poco o nada de ejercicio"},
	{Value: "ligero", Label: "Ligero", Description: "Ejercicio ligero 1-3 días/semana"},
	{Value: "moderado", Label: "Moderado", Description: "Ejercicio moderado 3-5 días/semana"},
	{Value: "activo", Label: "Muy activo", Description: "Ejercicio intenso 6-7 días/semana"},
}

var GoalOptions = []Option{
	{Value: "perder-peso", Label: "Perder peso"},
	{Value: "ganar-musculo", Label: "Ganar músculo"},
	{Value: "mantenerse", Label: "Mantenerme en forma"},
	{Value: "resistencia", Label: "Mejorar resistencia"},
	{Value: "fuerza", Label: "Aumentar fuerza"},
	{Value: "salud-general", Label: "Salud general"},
}

var ExperienceOptions = []Option{
	{Value: "principiante", Label: "Principiante", Description: "Menos de 6 meses"},
	{Value: "intermedio", Label: "Intermedio", Description: "6 meses - 2 años"},
	{Value: "avanzado", Label: "Avanzado", Description: "Más de 2 años"},
}

// NoCondition is exclusive with every other condition.
const NoCondition = "Ninguna de las anteriores"

var ConditionOptions = []string{
	"Hipertensión",
	"Diabetes",
	"Problemas cardíacos",
	"Problemas respiratorios",
	"Problemas de espalda",
	"Artritis o problemas articulares",
	"Osteoporosis",
	NoCondition,
}

var AvailabilityOptions = []Option{
	{Value: "15-30min", Label: "15-30 minutos"},
	{Value: "30-45min", Label: "30-45 minutos"},
	{Value: "45-60min", Label: "45-60 minutos"},
	{Value: "60+min", Label: "Más de 60 minutos"},
}

var LocationOptions = []Option{
	{Value: "casa", Label: "En casa"},
	{Value: "gimnasio", Label: "Gimnasio"},
	{Value: "mixto", Label: "Ambos"},
}

// Label returns the display text of value within opts, or value itself.
func Label(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func has(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
