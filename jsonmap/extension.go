package jsonmap

import (
	"github.com/huyiGithub/tiled"
	"github.com/huyiGithub/tiled/rtb"
)

// toLevelSettings reads the game-specific top-level fields. Everything
// here is optional and defaults to the zero value; malformed entries are
// never fatal.
func (c *converter) toLevelSettings(record map[string]any) *rtb.LevelSettings {
	s := &rtb.LevelSettings{
		HasError: asBool(record["haserror"]),

		LevelBrightness: floatOr(record["levelbrightness"], 0),

		CloudDensity:  floatOr(record["clouddensity"], 0),
		CloudVelocity: floatOr(record["cloudvelocity"], 0),
		CloudAlpha:    floatOr(record["cloudalpha"], 0),

		SnowDensity:        floatOr(record["snowdensity"], 0),
		SnowVelocity:       floatOr(record["snowvelocity"], 0),
		SnowRisingVelocity: floatOr(record["snowrisingvelocity"], 0),

		CameraGrain:      floatOr(record["cameragrain"], 0),
		CameraContrast:   floatOr(record["cameracontrast"], 0),
		CameraSaturation: floatOr(record["camerasaturation"], 0),
		CameraGlow:       floatOr(record["cameraglow"], 0),

		HasWalls:     asBool(record["haswalls"]),
		HasStarfield: asBool(record["hasstarfield"]),

		LevelName:        asString(record["levelname"]),
		LevelDescription: asString(record["leveldescription"]),

		BackgroundColorScheme: intOr(record["backgroundcolorscheme"], 0),
		GlowColorScheme:       intOr(record["glowcolorscheme"], 0),
		Chapter:               intOr(record["chapter"], 0),
		Difficulty:            intOr(record["difficulty"], 0),
		PlayStyle:             intOr(record["playstyle"], 0),
		WorkshopID:            intOr(record["workshopid"], 0),
		PreviewImagePath:      asString(record["previewimagepath"]),
	}

	if rgba, ok := tiled.ParseColor(asString(record["customglowcolor"])); ok {
		s.CustomGlowColor = &rgba
	}
	if rgba, ok := tiled.ParseColor(asString(record["custombackgroundcolor"])); ok {
		s.CustomBackgroundColor = &rgba
	}

	return s
}

// decodeExtension builds the typed extension record for an object's
// category from the object's own field map. Absent or malformed fields
// default to the zero value; categories without payloads yield nil.
func decodeExtension(cat rtb.Category, record map[string]any) rtb.ObjectExtension {
	switch cat {
	case rtb.CategoryCustomFloorTrap:
		return &rtb.CustomFloorTrap{
			IntervalSpeed:  intOr(record["intervalspeed"], 0),
			IntervalOffset: intOr(record["intervaloffset"], 0),
		}

	case rtb.CategoryMovingFloorTrapSpawner:
		return &rtb.MovingFloorTrapSpawner{
			SpawnAmount:    intOr(record["spawnamount"], 0),
			IntervalSpeed:  intOr(record["intervalspeed"], 0),
			RandomizeStart: asBool(record["randomizestart"]),
		}

	case rtb.CategoryButton:
		return &rtb.Button{
			BeatsActive:      intOr(record["beatsactive"], 0),
			LaserBeamTargets: asString(record["laserbeamtargets"]),
		}

	case rtb.CategoryLaserBeam:
		return &rtb.LaserBeam{
			BeamType:               intOr(record["beamtype"], 0),
			ActivatedOnStart:       asBool(record["activatedonstart"]),
			DirectionDegrees:       intOr(record["directiondegrees"], 0),
			TargetDirectionDegrees: intOr(record["targetdirectiondegrees"], 0),
			IntervalOffset:         intOr(record["intervaloffset"], 0),
			IntervalSpeed:          intOr(record["intervalspeed"], 0),
		}

	case rtb.CategoryProjectileTurret:
		return &rtb.ProjectileTurret{
			IntervalSpeed:   intOr(record["intervalspeed"], 0),
			IntervalOffset:  intOr(record["intervaloffset"], 0),
			ProjectileSpeed: intOr(record["projectilespeed"], 0),
			ShotDirection:   intOr(record["shotdirection"], 0),
		}

	case rtb.CategoryTeleporter:
		return &rtb.Teleporter{
			Target: targetOrEmpty(asString(record["teleportertarget"])),
		}

	case rtb.CategoryTarget:
		return &rtb.Target{}

	case rtb.CategoryFloorText:
		return &rtb.FloorText{
			Text:          asString(record["text"]),
			MaxCharacters: intOr(record["maxcharacters"], 0),
			TriggerZoneW:  intOr(record["triggerzonewidth"], 0),
			TriggerZoneH:  intOr(record["triggerzoneheight"], 0),
			UseTrigger:    asBool(record["usetrigger"]),
			Scale:         floatOr(record["scale"], 0),
			OffsetX:       floatOr(record["offsetx"], 0),
			OffsetY:       floatOr(record["offsety"], 0),
		}

	case rtb.CategoryCameraTrigger:
		return &rtb.CameraTrigger{
			Target:       targetOrEmpty(asString(record["cameratarget"])),
			TriggerZoneW: intOr(record["cameratriggerzonewidth"], 0),
			TriggerZoneH: intOr(record["cameratriggerzoneheight"], 0),
			CameraHeight: intOr(record["cameraheight"], 0),
			CameraAngle:  intOr(record["cameraangle"], 0),
		}

	case rtb.CategoryStartLocation:
		return &rtb.StartLocation{}

	case rtb.CategoryFinishHole:
		return &rtb.FinishHole{}

	case rtb.CategoryNPCBallSpawner:
		return &rtb.NPCBallSpawner{
			SpawnClass:     intOr(record["spawnclass"], 0),
			Size:           intOr(record["size"], 0),
			IntervalOffset: intOr(record["intervaloffset"], 0),
			SpawnFrequency: intOr(record["spawnfrequency"], 0),
			Speed:          intOr(record["speed"], 0),
			Direction:      intOr(record["direction"], 0),
		}
	}

	return nil
}

// The authoring tool writes the literal string "0" for unlinked
// teleporter and camera targets; it means "no target", not a name.
func targetOrEmpty(target string) string {
	if target == "0" {
		return ""
	}
	return target
}
