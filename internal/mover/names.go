package mover

const (
	suffixGoal       = "Goal"
	suffixIsMoving   = "IsMoving"
	suffixMoveMode   = "MoveMode"
	suffixConfigName = "MoveConfigName"
	suffixConfigs    = "MoveConfigs"
)

// Names are the state keys derived from a mover's base name.
type Names struct {
	Value             string `json:"value" yaml:"value"`
	ValueGoal         string `json:"valueGoal" yaml:"valueGoal"`
	IsMoving          string `json:"isMoving" yaml:"isMoving"`
	MoveMode          string `json:"moveMode" yaml:"moveMode"`
	PhysicsConfigName string `json:"physicsConfigName" yaml:"physicsConfigName"`
	PhysicsConfigs    string `json:"physicsConfigs" yaml:"physicsConfigs"`
}

// StateNames derives all six keys for name, including the config keys a
// particular state bag may not carry.
func StateNames(name string) Names {
	return Names{
		Value:             name,
		ValueGoal:         name + suffixGoal,
		IsMoving:          name + suffixIsMoving,
		MoveMode:          name + suffixMoveMode,
		PhysicsConfigName: name + suffixConfigName,
		PhysicsConfigs:    name + suffixConfigs,
	}
}

// Keys returns the derived keys in declaration order.
func (n Names) Keys() []string {
	return []string{n.Value, n.ValueGoal, n.IsMoving, n.MoveMode, n.PhysicsConfigName, n.PhysicsConfigs}
}
