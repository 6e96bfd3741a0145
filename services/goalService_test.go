package services

import "testing"

func TestCalculateDailyGoalDefaults(t *testing.T) {
	// All defaults: weight 70, age 30, height 170, light activity.
	// base = 70*33 = 2310, factor = 1 + 0.05 = 1.05,
	// round(2425.5/50)*50 = 2450.
	got := CalculateDailyGoal(GoalInput{})
	if got != 2450 {
		t.Fatalf("expected 2450, got %d", got)
	}
}

func TestCalculateDailyGoalDeterministic(t *testing.T) {
	in := GoalInput{Weight: 82.5, Age: 41, Height: 178, Activity: "moderate", Gender: "male", Climate: "humid"}
	first := CalculateDailyGoal(in)
	for i := 0; i < 10; i++ {
		if got := CalculateDailyGoal(in); got != first {
			t.Fatalf("expected stable result %d, got %d", first, got)
		}
	}
	if first <= 0 {
		t.Fatalf("expected positive goal, got %d", first)
	}
	if first%50 != 0 {
		t.Fatalf("expected multiple of 50, got %d", first)
	}
}

func TestCalculateDailyGoalMultipleOf50(t *testing.T) {
	activities := []string{"", "sedentary", "light", "moderate", "very", "extreme"}
	climates := []string{"", "hot", "humid", "dry", "cold", "moderate"}
	genders := []string{"", "male", "female", "other"}

	for _, act := range activities {
		for _, cl := range climates {
			for _, g := range genders {
				in := GoalInput{Weight: 63, Age: 27, Height: 181, Activity: act, Gender: g, Climate: cl}
				got := CalculateDailyGoal(in)
				if got <= 0 || got%50 != 0 {
					t.Fatalf("activity=%q climate=%q gender=%q: expected positive multiple of 50, got %d", act, cl, g, got)
				}
			}
		}
	}
}

func TestCalculateDailyGoalAgeBands(t *testing.T) {
	// age 25: rate 35, base 2800, ageFactor 0.075, gender +0.05,
	// height (10/170)*0.06, activity +0.25, climate +0.10.
	got := CalculateDailyGoal(GoalInput{Weight: 80, Age: 25, Height: 180, Activity: "very", Gender: "male", Climate: "hot"})
	if got != 4150 {
		t.Errorf("young/active case: expected 4150, got %d", got)
	}

	// age 70: rate 30, base 1800, ageFactor clamped at -0.1, rest
	// neutral: 1800*0.9 = 1620 -> 1600.
	got = CalculateDailyGoal(GoalInput{Weight: 60, Age: 70})
	if got != 1600 {
		t.Errorf("senior case: expected 1600, got %d", got)
	}
}

func TestCalculateDailyGoalAgeFactorClamped(t *testing.T) {
	// (40-10)/200 = 0.15 must clamp to 0.1; (40-90)/200 = -0.25 to -0.1.
	young := CalculateDailyGoal(GoalInput{Weight: 70, Age: 10})
	// base 2450, factor 1.1 -> 2695 -> round(53.9)*50 = 2700
	if young != 2700 {
		t.Errorf("expected 2700 for age 10, got %d", young)
	}
	old := CalculateDailyGoal(GoalInput{Weight: 70, Age: 90})
	// base 2100, factor 0.9 -> 1890 -> round(37.8)*50 = 1900
	if old != 1900 {
		t.Errorf("expected 1900 for age 90, got %d", old)
	}
}

func TestWeatherAdjustmentNeutral(t *testing.T) {
	if got := WeatherAdjustment(Weather{}); got != 0 {
		t.Fatalf("zero conditions: expected 0, got %d", got)
	}
	// Mild band: no term fires between 10 and 20 degrees, humidity <= 50.
	if got := WeatherAdjustment(Weather{Humidity: 50, Temperature: 15}); got != 0 {
		t.Fatalf("mild conditions: expected 0, got %d", got)
	}
}

func TestWeatherAdjustmentTerms(t *testing.T) {
	cases := []struct {
		name string
		w    Weather
		want int
	}{
		{"warm", Weather{Humidity: 40, Temperature: 25}, 250},
		{"cold", Weather{Humidity: 40, Temperature: 5}, -100},
		{"humid", Weather{Humidity: 80, Temperature: 15}, 120},
		// 750 + 120 + (35-28)*(80-60)/100*10 = 884
		{"hot and humid", Weather{Humidity: 80, Temperature: 35}, 884},
	}
	for _, tc := range cases {
		if got := WeatherAdjustment(tc.w); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestWeatherAdjustmentClamped(t *testing.T) {
	if got := WeatherAdjustment(Weather{Humidity: 100, Temperature: 60}); got != 1500 {
		t.Errorf("expected upper clamp 1500, got %d", got)
	}
	if got := WeatherAdjustment(Weather{Humidity: 0, Temperature: -40}); got != -500 {
		t.Errorf("expected lower clamp -500, got %d", got)
	}
}
