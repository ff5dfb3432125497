package rtb

// Category identifies which gameplay role an object plays and therefore
// which extension record it carries.
type Category int

const (
	CategoryNone Category = iota
	CategoryCustomFloorTrap
	CategoryMovingFloorTrapSpawner
	CategoryButton
	CategoryLaserBeam
	CategoryProjectileTurret
	CategoryTeleporter
	CategoryTarget
	CategoryFloorText
	CategoryCameraTrigger
	CategoryStartLocation
	CategoryFinishHole
	CategoryNPCBallSpawner
)

var categoryNames = map[Category]string{
	CategoryNone:                   "none",
	CategoryCustomFloorTrap:        "customfloortrap",
	CategoryMovingFloorTrapSpawner: "movingfloortrapspawner",
	CategoryButton:                 "button",
	CategoryLaserBeam:              "laserbeam",
	CategoryProjectileTurret:       "projectileturret",
	CategoryTeleporter:             "teleporter",
	CategoryTarget:                 "teleportertarget",
	CategoryFloorText:              "floortext",
	CategoryCameraTrigger:          "cameratrigger",
	CategoryStartLocation:          "startlocation",
	CategoryFinishHole:             "finishhole",
	CategoryNPCBallSpawner:         "npcballspawner",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "none"
}

// ObjectExtension is the game-specific payload attached to a placed
// object. Concrete types are the per-category records below.
type ObjectExtension interface {
	Category() Category
}

// CustomFloorTrap is a floor tile that fires on a beat interval.
type CustomFloorTrap struct {
	IntervalSpeed  int
	IntervalOffset int
}

func (*CustomFloorTrap) Category() Category { return CategoryCustomFloorTrap }

// MovingFloorTrapSpawner emits moving floor traps.
type MovingFloorTrapSpawner struct {
	SpawnAmount    int
	IntervalSpeed  int
	RandomizeStart bool
}

func (*MovingFloorTrapSpawner) Category() Category { return CategoryMovingFloorTrapSpawner }

// Button toggles its listed laser beams while pressed.
type Button struct {
	BeatsActive int
	// LaserBeamTargets is a comma-separated list of object names.
	LaserBeamTargets string
}

func (*Button) Category() Category { return CategoryButton }

// LaserBeam is a rotating or interval-driven beam hazard.
type LaserBeam struct {
	BeamType               int
	ActivatedOnStart       bool
	DirectionDegrees       int
	TargetDirectionDegrees int
	IntervalOffset         int
	IntervalSpeed          int
}

func (*LaserBeam) Category() Category { return CategoryLaserBeam }

// ProjectileTurret fires projectiles in a fixed direction on an interval.
type ProjectileTurret struct {
	IntervalSpeed   int
	IntervalOffset  int
	ProjectileSpeed int
	ShotDirection   int
}

func (*ProjectileTurret) Category() Category { return CategoryProjectileTurret }

// Teleporter moves the ball to its named target object. An empty Target
// means the teleporter is unlinked.
type Teleporter struct {
	Target string
}

func (*Teleporter) Category() Category { return CategoryTeleporter }

// Target is a teleporter destination; it carries no extra fields.
type Target struct{}

func (*Target) Category() Category { return CategoryTarget }

// FloorText renders text on the floor, optionally only inside a trigger
// zone.
type FloorText struct {
	Text          string
	MaxCharacters int
	TriggerZoneW  int
	TriggerZoneH  int
	UseTrigger    bool
	Scale         float64
	OffsetX       float64
	OffsetY       float64
}

func (*FloorText) Category() Category { return CategoryFloorText }

// CameraTrigger retargets the camera while the ball is inside its zone.
// An empty Target means the trigger is unlinked.
type CameraTrigger struct {
	Target       string
	TriggerZoneW int
	TriggerZoneH int
	CameraHeight int
	CameraAngle  int
}

func (*CameraTrigger) Category() Category { return CategoryCameraTrigger }

// StartLocation marks where the ball spawns; it carries no extra fields.
type StartLocation struct{}

func (*StartLocation) Category() Category { return CategoryStartLocation }

// FinishHole marks the level goal; it carries no extra fields.
type FinishHole struct{}

func (*FinishHole) Category() Category { return CategoryFinishHole }

// NPCBallSpawner emits NPC balls with the configured class and motion.
type NPCBallSpawner struct {
	SpawnClass     int
	Size           int
	IntervalOffset int
	SpawnFrequency int
	Speed          int
	Direction      int
}

func (*NPCBallSpawner) Category() Category { return CategoryNPCBallSpawner }
