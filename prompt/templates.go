package prompt

const mealWeekExemplar = `{
  "Day 1": {
    "Breakfast": "[dish name]",
    "Lunch": "[dish name]",
    "Dinner": "[dish name]"
  },
  "Day 2": {
    "Breakfast": "[dish name]",
    "Lunch": "[dish name]",
    "Dinner": "[dish name]"
  },
  "Day 3": {
    "Breakfast": "[dish name]",
    "Lunch": "[dish name]",
    "Dinner": "[dish name]"
  },
  "Day 4": {
    "Breakfast": "[dish name]",
    "Lunch": "[dish name]",
    "Dinner": "[dish name]"
  },
  "Day 5": {
    "Breakfast": "[dish name]",
    "Lunch": "[dish name]",
    "Dinner": "[dish name]"
  },
  "Day 6": {
    "Breakfast": "[dish name]",
    "Lunch": "[dish name]",
    "Dinner": "[dish name]"
  },
  "Day 7": {
    "Breakfast": "[dish name]",
    "Lunch": "[dish name]",
    "Dinner": "[dish name]"
  }
}`

const mealPlanV1Text = `
Generate a personalized weekly meal plan based on the following details:

    Weight: {{.weight}}
    Gender: {{.gender}}
    Age: {{.age}}
    Height: {{.height}}
    Activity Level: {{.activity_level}} (choose from beginner, intermediate, advanced)
    Goal: {{.goal}} (choose from weight_loss, muscle_gain, strength_training, cardiovascular_endurance, flexibility, general_fitness)

Please provide a meal plan for a week, structured as:

` + mealWeekExemplar + `

Each "[dish name]" should correspond to a specific meal recommendation based on the nutritional needs and preferences determined by the user's profile.
Reply with the JSON object only.
`

const workoutPlanV1Text = `
Generate a workout routine based on the following details:

    Weight: {{.weight}} kg
    Gender: {{.gender}}
    Target: {{.target}}
    Goal: {{.goal}}

Please provide a workout routine for a week, structured as:

{
  "Day 1": {
    "Exercise 1": "4 sets x 12 reps",
    "Exercise 2": "3 sets x 15 reps",
    "Exercise 3": "4 sets x 10 reps"
  },
  "Day 2": {
    "Exercise 4": "4 sets x 12 reps",
    "Exercise 5": "3 sets x 15 reps",
    "Exercise 6": "4 sets x 10 reps"
  },
  "Day 3": {
    "Exercise 7": "4 sets x 12 reps",
    "Exercise 8": "3 sets x 15 reps",
    "Exercise 9": "4 sets x 10 reps"
  },
  "Day 4": {
    "Rest day or optional light cardio/stretching": ""
  },
  "Day 5": {
    "Exercise 10": "4 sets x 12 reps",
    "Exercise 11": "3 sets x 15 reps",
    "Exercise 12": "4 sets x 10 reps"
  },
  "Day 6": {
    "Exercise 13": "4 sets x 12 reps",
    "Exercise 14": "3 sets x 15 reps",
    "Exercise 15": "4 sets x 10 reps"
  },
  "Day 7": {
    "Exercise 16": "4 sets x 12 reps",
    "Exercise 17": "3 sets x 15 reps",
    "Exercise 18": "4 sets x 10 reps"
  }
}

Reply with the JSON object only.
`

const mealPlanV2Text = `
Generate a personalized weekly meal plan based on the following details:

    Name: {{.name}}
    Gender: {{.gender}}
    Age: {{.age}}
    Height: {{.height}}
    Current Weight: {{.current_weight}}
    Target Weight: {{.target_weight}}
    Activity Level: {{.activity_level}} (choose from beginner, intermediate, advanced)
    Heartbeat: {{.heart_beat}}
    Sleep: {{.sleep}}
    Calories Burnt: {{.calories_burnt}}
    Steps: {{.steps}}

Please provide a meal plan for a week, structured as:

` + mealWeekExemplar + `

Each "[dish name]" should correspond to a specific meal recommendation based on the nutritional needs and preferences determined by the user's profile.
`

const workoutPlanV2Text = `
Generate a workout routine for a {{.current_weight}} kg {{.gender}}, aged {{.age}}, with a height of {{.height}} cm and a target weight of {{.target_weight}}.
    Heart beat: {{.heart_beat}}
    Activity level: {{.activity_level}}
    Sleep duration: {{.sleep}}
    Calories burnt: {{.calories_burnt}}
    Steps per day: {{.steps}}
Include exercises and sets/reps for each day of the week.

Please provide a workout routine for a week, structured as:

Example exercise field: "Exercise 1": "Squats - 4 sets x 10 reps"

{
  "Day 1": {
    "Exercise 1": "(Exercise Name)-4 sets x 12 reps",
    "Exercise 2": "(Exercise Name)-3 sets x 15 reps",
    "Exercise 3": "(Exercise Name)-4 sets x 10 reps"
  },
  "Day 2": {
    "Exercise 4": "(Exercise Name)-4 sets x 12 reps",
    "Exercise 5": "(Exercise Name)-3 sets x 15 reps",
    "Exercise 6": "(Exercise Name)-4 sets x 10 reps"
  },
  "Day 3": {
    "Exercise 7": "(Exercise Name)-4 sets x 12 reps",
    "Exercise 8": "(Exercise Name)-3 sets x 15 reps",
    "Exercise 9": "(Exercise Name)-4 sets x 10 reps"
  },
  "Day 4": {
    "Rest day or optional light cardio/stretching": ""
  },
  "Day 5": {
    "Exercise 10": "(Exercise Name)-4 sets x 12 reps",
    "Exercise 11": "(Exercise Name)-3 sets x 15 reps",
    "Exercise 12": "(Exercise Name)-4 sets x 10 reps"
  },
  "Day 6": {
    "Exercise 13": "(Exercise Name)-4 sets x 12 reps",
    "Exercise 14": "(Exercise Name)-3 sets x 15 reps",
    "Exercise 15": "(Exercise Name)-4 sets x 10 reps"
  },
  "Day 7": {
    "Exercise 16": "(Exercise Name)-4 sets x 12 reps",
    "Exercise 17": "(Exercise Name)-3 sets x 15 reps",
    "Exercise 18": "(Exercise Name)-4 sets x 10 reps"
  }
}
`
