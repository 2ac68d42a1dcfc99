package rover

import "github.com/katalvlaran/pathseek/space"

// Action names as they appear in solution traces.
const (
	ActMoveToSample  = "move_to_sample"
	ActMoveToStation = "move_to_station"
	ActMoveToBattery = "move_to_battery"
	ActPickUpSample  = "pick_up_sample"
	ActDropSample    = "drop_sample"
	ActCharge        = "charge"
	ActPickUpTool    = "pick_up_tool"
	ActDropTool      = "drop_tool"
	ActUseTool       = "use_tool"
)

// moveTo returns a transition to loc; a no-op when already there.
func moveTo(loc Location) func(State) State {
	return func(s State) State {
		s.Loc = loc
		return s
	}
}

// MoveToSample drives to the sample site.
func MoveToSample() space.Action[State] { return space.NewAction(ActMoveToSample, moveTo(Sample)) }

// MoveToStation drives to the station.
func MoveToStation() space.Action[State] { return space.NewAction(ActMoveToStation, moveTo(Station)) }

// MoveToBattery drives to the battery.
func MoveToBattery() space.Action[State] { return space.NewAction(ActMoveToBattery, moveTo(Battery)) }

// PickUpSample lifts an extracted sample at the sample site.
func PickUpSample() space.Action[State] {
	return space.NewAction(ActPickUpSample, func(s State) State {
		if s.SampleExtracted && s.Loc == Sample && !s.HoldingSample {
			s.HoldingSample = true
		}
		return s
	})
}

// DropSample unloads the sample at the station.
func DropSample() space.Action[State] {
	return space.NewAction(ActDropSample, func(s State) State {
		if s.HoldingSample && s.Loc == Station {
			s.HoldingSample = false
		}
		return s
	})
}

// Charge tops up at the battery.
func Charge() space.Action[State] {
	return space.NewAction(ActCharge, func(s State) State {
		if s.Loc == Battery && !s.Charged {
			s.Charged = true
		}
		return s
	})
}

// PickUpTool takes the drill from the station.
func PickUpTool() space.Action[State] {
	return space.NewAction(ActPickUpTool, func(s State) State {
		if s.Loc == Station && !s.HoldingTool {
			s.HoldingTool = true
		}
		return s
	})
}

// DropTool leaves the drill at the sample site.
func DropTool() space.Action[State] {
	return space.NewAction(ActDropTool, func(s State) State {
		if s.HoldingTool && s.Loc == Sample {
			s.HoldingTool = false
		}
		return s
	})
}

// UseTool extracts the sample.
func UseTool() space.Action[State] {
	return space.NewAction(ActUseTool, func(s State) State {
		if s.HoldingTool && s.Loc == Sample && !s.SampleExtracted {
			s.SampleExtracted = true
		}
		return s
	})
}

// BasicActions is the action set without the tool. Order matters for
// expansion order and thus for DFS results.
func BasicActions() []space.Action[State] {
	return []space.Action[State]{
		MoveToSample(),
		PickUpSample(),
		MoveToStation(),
		DropSample(),
		MoveToBattery(),
		Charge(),
	}
}

// ToolActions is the full action set.
func ToolActions() []space.Action[State] {
	return []space.Action[State]{
		PickUpTool(),
		MoveToSample(),
		UseTool(),
		DropTool(),
		PickUpSample(),
		MoveToStation(),
		DropSample(),
		MoveToBattery(),
		Charge(),
	}
}
