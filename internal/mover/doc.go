// Package mover builds the initial state of animated values.
//
// A mover named "x" owns the keys "x", "xGoal", "xIsMoving" and "xMoveMode",
// plus "xMoveConfigName" and "xMoveConfigs" when they are set. [StateNames]
// derives the keys and a [StateMaker] fills them in:
//
//	bag := mover.NumberState("opacity", &mover.InitialState[float64]{
//	    ValueGoal: mover.Ptr(1.0),
//	})
//	bag.MergeInto(componentState)
package mover
