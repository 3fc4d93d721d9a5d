package constant

var ActivityLevels = []string{"beginner", "intermediate", "advanced"}

var Goals = []string{
	"weight_loss",
	"muscle_gain",
	"strength_training",
	"cardiovascular_endurance",
	"flexibility",
	"general_fitness",
}

// MuscleTargets is the body-part vocabulary accepted by the workout generator.
var MuscleTargets = []string{
	"abs",
	"quads",
	"lats",
	"calves",
	"pectorals",
	"glutes",
	"hamstrings",
	"adductors",
	"triceps",
	"cardiovascular system",
	"spine",
	"upper back",
	"biceps",
	"delts",
	"forearms",
	"traps",
	"serratus anterior",
	"abductors",
	"levator scapulae",
}
