package schedule

import "time"

// MealSlots is the number of meals scheduled every day.
const MealSlots = 5

type CarbType string

const (
	CarbTypeHigh CarbType = "high"
	CarbTypeLow  CarbType = "low"
)

func (ct CarbType) String() string {
	return string(ct)
}

type Exercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets"`
	RepRange string `json:"repRange"`
	Pyramid  bool   `json:"pyramid,omitempty"`
	AMRAP    bool   `json:"amrap,omitempty"`
}

type WorkoutDay struct {
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// IsRest reports whether the day has no strength workout.
func (wd WorkoutDay) IsRest() bool {
	return len(wd.Exercises) == 0
}

// Exercise finds a scheduled exercise by its name.
func (wd WorkoutDay) Exercise(name string) (Exercise, bool) {
	for _, ex := range wd.Exercises {
		if ex.Name == name {
			return ex, true
		}
	}
	return Exercise{}, false
}

type MealOption struct {
	Description string `json:"description"`
	Calories    int    `json:"calories"`
}

type MealPlan struct {
	Time    string        `json:"time"`
	Title   string        `json:"title"`
	Options [2]MealOption `json:"options"`
}

var restDay = WorkoutDay{Name: "Rest", Exercises: []Exercise{}}

var workouts = [7]WorkoutDay{
	time.Monday: {
		Name: "Legs",
		Exercises: []Exercise{
			{Name: "Hack Squats", Sets: 4, RepRange: "10-12"},
			{Name: "Leg Press", Sets: 4, RepRange: "10-12"},
			{Name: "Lunges", Sets: 4, RepRange: "12-15"},
			{Name: "Leg Curls", Sets: 4, RepRange: "10-12"},
			{Name: "Leg Extensions", Sets: 4, RepRange: "12-15"},
			{Name: "Calf Raises", Sets: 6, RepRange: "15-20"},
		},
	},
	time.Tuesday: {
		Name: "Arms & Shoulders",
		Exercises: []Exercise{
			{Name: "Seated Dumbbell Shoulder Press", Sets: 3, RepRange: "8-10"},
			{Name: "Dumbbell Lateral Raises", Sets: 3, RepRange: "12-15"},
			{Name: "Barbell Bicep Curls", Sets: 3, RepRange: "8-10"},
			{Name: "Alternating Dumbbell Curls", Sets: 2, RepRange: "10-12"},
			{Name: "Hammer Curls", Sets: 2, RepRange: "12-15"},
			{Name: "Close-Grip Bench Press", Sets: 3, RepRange: "8-10"},
			{Name: "Overhead Triceps Extension", Sets: 2, RepRange: "10-12"},
			{Name: "Triceps Rope Pushdowns", Sets: 3, RepRange: "12-15"},
		},
	},
	time.Wednesday: restDay,
	time.Thursday: {
		Name: "Chest & Triceps",
		Exercises: []Exercise{
			{Name: "Bench Press", Sets: 4, RepRange: "8-10"},
			{Name: "Incline Dumbbell Press", Sets: 3, RepRange: "10-12"},
			{Name: "Chest Flies", Sets: 3, RepRange: "12-15"},
			{Name: "Incline Bench Press", Sets: 7, RepRange: "Pyramid 15→6", Pyramid: true},
			{Name: "Tricep Dips", Sets: 4, RepRange: "10-12"},
			{Name: "Tricep Pushdowns", Sets: 6, RepRange: "12-15"},
			{Name: "Overhead Tricep Extension", Sets: 6, RepRange: "12-15"},
		},
	},
	time.Friday: {
		Name: "Back & Biceps",
		Exercises: []Exercise{
			{Name: "Pull-Ups", Sets: 4, RepRange: "8-10"},
			{Name: "Bent Over Rows", Sets: 4, RepRange: "10-12"},
			{Name: "Lat Pulldowns", Sets: 4, RepRange: "12-15"},
			{Name: "Single-Arm Dumbbell Rows", Sets: 4, RepRange: "6-10"},
			{Name: "Hyper Extensions", Sets: 4, RepRange: "15"},
			{Name: "Barbell Curls", Sets: 4, RepRange: "10-12"},
			{Name: "Hammer Curls", Sets: 4, RepRange: "12-15"},
			{Name: "Seated Rows", Sets: 4, RepRange: "12-15"},
		},
	},
	time.Saturday: {
		Name: "Shoulders & Triceps",
		Exercises: []Exercise{
			{Name: "Shoulder Press", Sets: 4, RepRange: "8-10"},
			{Name: "Lateral Raises", Sets: 4, RepRange: "12-15"},
			{Name: "Front Raises", Sets: 4, RepRange: "12-15"},
			{Name: "Reverse Machine Flies", Sets: 4, RepRange: "8-10"},
			{Name: "Reverse EZ Bar Pushdowns", Sets: 4, RepRange: "10-12"},
			{Name: "Skull Crushers", Sets: 4, RepRange: "12-15"},
			{Name: "Rope Tricep Pushdowns", Sets: 4, RepRange: "12-15"},
		},
	},
	time.Sunday: restDay,
}

var carbTypes = [7]CarbType{
	time.Monday:    CarbTypeHigh,
	time.Tuesday:   CarbTypeLow,
	time.Wednesday: CarbTypeLow,
	time.Thursday:  CarbTypeLow,
	time.Friday:    CarbTypeLow,
	time.Saturday:  CarbTypeLow,
	time.Sunday:    CarbTypeLow,
}

var lowCarbMeals = [MealSlots]MealPlan{
	{
		Time:  "7:30 AM",
		Title: "Breakfast",
		Options: [2]MealOption{
			{Description: "2 whole eggs + 6 egg whites + 2 slices gluten-free toast + apple + multivitamin + 2 omega-3 capsules", Calories: 515},
			{Description: "1.5 scoops whey isolate + 50g oats + 150g strawberries + multivitamin + 2 omega-3", Calories: 540},
		},
	},
	{
		Time:  "10:00 AM",
		Title: "Mid-Morning Snack",
		Options: [2]MealOption{
			{Description: "1 scoop whey isolate + 250ml almond milk + orange", Calories: 212},
			{Description: "1 scoop MRE Lite + 200ml almond milk + orange", Calories: 210},
		},
	},
	{
		Time:  "1:00 PM",
		Title: "Lunch",
		Options: [2]MealOption{
			{Description: "150g chicken breast + 100g white rice + 2 cucumbers", Calories: 430},
			{Description: "150g chicken + 120g baked potato + 2 cucumbers", Calories: 440},
		},
	},
	{
		Time:  "4:00 PM",
		Title: "Pre-Workout",
		Options: [2]MealOption{
			{Description: "1 can tuna (in water) + salad (lettuce, parsley, green onion, cucumber, green peppers, vinegar)", Calories: 150},
			{Description: "150g chicken breast + same salad", Calories: 280},
		},
	},
	{
		Time:  "7:00 PM",
		Title: "Dinner",
		Options: [2]MealOption{
			{Description: "150g chicken with mustard + 120g basmati rice + cucumber", Calories: 430},
			{Description: "200g shrimp + 140g baked potato + cooked vegetables", Calories: 410},
		},
	},
}

var highCarbMeals = [MealSlots]MealPlan{
	{
		Time:  "7:30 AM",
		Title: "Breakfast",
		Options: [2]MealOption{
			{Description: "2 whole eggs + 4 egg whites + 2 slices whole wheat gluten-free toast + apple + multivitamin + 2 omega-3", Calories: 463},
			{Description: "1.5 scoops whey isolate + 60g oatmeal + 1 cup strawberries + multivitamin + 2 omega-3", Calories: 555},
		},
	},
	{
		Time:  "10:00 AM",
		Title: "Mid-Morning Snack",
		Options: [2]MealOption{
			{Description: "1 scoop whey isolate + 250ml almond milk", Calories: 150},
			{Description: "1 scoop MRE Lite + 200ml almond milk", Calories: 150},
		},
	},
	{
		Time:  "1:00 PM",
		Title: "Lunch",
		Options: [2]MealOption{
			{Description: "150g chicken + 150g white rice + 2 cucumbers", Calories: 480},
			{Description: "150g chicken + 170g baked potato + 2 cucumbers", Calories: 440},
		},
	},
	{
		Time:  "4:00 PM",
		Title: "Pre-Workout",
		Options: [2]MealOption{
			{Description: "250g shrimp + 150g white rice + mushrooms + vegetables", Calories: 450},
			{Description: "200g chicken + 200g baked potato + green veggies", Calories: 430},
		},
	},
	{
		Time:  "7:00 PM",
		Title: "Dinner (Cheat Meal)",
		Options: [2]MealOption{
			{Description: "Hamburger or cheeseburger + fries/sweet potato fries/onion rings", Calories: 850},
			{Description: "Steak + baked or mashed potato", Calories: 700},
		},
	},
}

var mealTables = map[CarbType]*[MealSlots]MealPlan{
	CarbTypeHigh: &highCarbMeals,
	CarbTypeLow:  &lowCarbMeals,
}

var shakes = map[CarbType]MealOption{
	CarbTypeHigh: {
		Description: "2 scoops whey isolate + EAA + 5g glutamine + 5g creatine + 2g L-carnitine + 1 scoop carb powder",
		Calories:    390,
	},
	CarbTypeLow: {
		Description: "1 scoop whey isolate + EAA + 5g glutamine + 5g creatine + 2g L-carnitine + 1 banana",
		Calories:    300,
	},
}

var comfortFood = MealOption{
	Description: "Rice Cake + 1 tbsp Peanut Butter (sugar-free PB recommended)",
	Calories:    130,
}
