package questionnaire

import "math"

// BMI is weight / height_m², rounded to one decimal. ok is false when either input is not positive.
func BMI(weightKg, heightCm float64) (bmi float64, ok bool) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	h := heightCm / 100
	return math.Round(weightKg/(h*h)*10) / 10, true
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Bajo peso"
	case bmi < 25:
		return "Peso normal"
	case bmi < 30:
		return "Sobrepeso"
	default:
		return "Obesidad"
	}
}
