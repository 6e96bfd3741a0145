package services

import (
	"math"

	"hydration/models"
)

// DefaultDailyGoal is the fallback goal in ml when no profile context
// is available for a day's record.
const DefaultDailyGoal = 2000

// GoalInput holds the biometric inputs for the daily goal formula.
// Zero values fall back to the defaults below.
type GoalInput struct {
	Weight   float64 // kg, default 70
	Age      int     // years, default 30
	Height   float64 // cm, default 170
	Activity string  // default "light"
	Gender   string  // default "other"
	Climate  string  // default "moderate"
}

// GoalInputFromProfile maps a stored profile onto the formula inputs.
func GoalInputFromProfile(p models.Profile) GoalInput {
	return GoalInput{
		Weight:   p.Weight,
		Age:      p.Age,
		Height:   p.Height,
		Activity: p.Activity,
		Gender:   p.Gender,
		Climate:  p.Climate,
	}
}

var activityFactors = map[string]float64{
	"sedentary": -0.10,
	"light":     0,
	"moderate":  0.12,
	"very":      0.25,
	"extreme":   0.40,
}

var climateFactors = map[string]float64{
	"hot":   0.10,
	"humid": 0.08,
	"dry":   0.05,
	"cold":  -0.05,
}

// CalculateDailyGoal computes the personalized daily fluid goal in ml,
// rounded to the nearest 50. Deterministic and side-effect free; always
// returns a positive value.
//
// base rate per kg varies by age band, then a multiplicative adjustment
// combines age, gender, height, activity and climate factors.
func CalculateDailyGoal(in GoalInput) int {
	weight := in.Weight
	if weight <= 0 {
		weight = 70
	}
	age := in.Age
	if age <= 0 {
		age = 30
	}
	height := in.Height
	if height <= 0 {
		height = 170
	}
	activity := in.Activity
	if activity == "" {
		activity = "light"
	}

	var rate float64
	switch {
	case age < 30:
		rate = 35
	case age > 60:
		rate = 30
	default:
		rate = 33
	}
	base := weight * rate

	ageFactor := clamp(float64(40-age)/200, -0.1, 0.1)

	var genderFactor float64
	switch in.Gender {
	case "male":
		genderFactor = 0.05
	case "female":
		genderFactor = -0.03
	}

	heightFactor := (height - 170) / 170 * 0.06
	activityFactor := activityFactors[activity]
	climateFactor := climateFactors[in.Climate]

	adjustmentFactor := 1 + ageFactor + genderFactor + heightFactor + activityFactor + climateFactor
	return int(math.Round(base*adjustmentFactor/50)) * 50
}

// Weather is the sampled conditions used to adjust a day's goal.
type Weather struct {
	Humidity    float64 // percent, 0-100
	Temperature float64 // celsius
}

// WeatherAdjustment converts sampled conditions into a signed ml delta,
// clamped to [-500, 1500]. A zero-valued Weather yields 0, which is the
// fallback when the weather lookup fails.
func WeatherAdjustment(w Weather) int {
	var adjustment float64

	// Sliding temperature scale: +50ml per degree above 20, -20ml per
	// degree below 10.
	if w.Temperature > 20 {
		adjustment += (w.Temperature - 20) * 50
	} else if w.Temperature < 10 {
		adjustment -= (10 - w.Temperature) * 20
	}

	if w.Humidity > 50 {
		adjustment += (w.Humidity - 50) * 4
	}

	// Heat stress on top of the linear terms in extreme conditions.
	if w.Temperature > 28 && w.Humidity > 60 {
		heatStressFactor := (w.Temperature - 28) * (w.Humidity - 60) / 100
		adjustment += heatStressFactor * 10
	}

	return int(clamp(math.Round(adjustment), -500, 1500))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
