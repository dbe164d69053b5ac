package config

// AnimationID names an actor animation.
type AnimationID string

const (
	AnimIdle   AnimationID = "idle"
	AnimRun    AnimationID = "run"
	AnimAttack AnimationID = "attack1"
	AnimDie    AnimationID = "die"
)

type AnimationDef struct {
	First int
	Last  int
	Speed int // Ticks per frame
	Loop  bool
}

// SheetDef locates a character's row in the actor sprite sheet.
type SheetDef struct {
	Row        int
	Animations map[AnimationID]AnimationDef
}

// CharacterAnimations maps a character key to its sheet row and
// animation definitions. Columns are shared by every character.
var CharacterAnimations = map[string]SheetDef{
	"player": {
		Row: 0,
		Animations: map[AnimationID]AnimationDef{
			AnimIdle:   {First: 0, Last: 1, Speed: 30, Loop: true},
			AnimRun:    {First: 2, Last: 5, Speed: 8, Loop: true},
			AnimAttack: {First: 6, Last: 7, Speed: 10, Loop: true},
			AnimDie:    {First: 6, Last: 7, Speed: 20},
		},
	},
	"melee": {
		Row: 1,
		Animations: map[AnimationID]AnimationDef{
			AnimIdle:   {First: 0, Last: 1, Speed: 30, Loop: true},
			AnimRun:    {First: 2, Last: 5, Speed: 8, Loop: true},
			AnimAttack: {First: 6, Last: 7, Speed: 10, Loop: true},
		},
	},
}
