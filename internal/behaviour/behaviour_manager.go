package behaviour

// Behaviour is the loose (non-component) update hook. Anything that
// wants per-tick callbacks without owning a GameObject implements it.
type Behaviour interface {
	Start()
	Update(deltaTime float32)
	UpdateFixed(step float32)
}

type BehaviourWrapper struct {
	Behaviour Behaviour
	started   bool
}

type BehaviourManager struct {
	behaviours []BehaviourWrapper
}

var GlobalBehaviourManager = NewBehaviourManager()

func NewBehaviourManager() *BehaviourManager {
	return &BehaviourManager{}
}

func (m *BehaviourManager) Add(behaviour Behaviour) {
	m.behaviours = append(m.behaviours, BehaviourWrapper{Behaviour: behaviour, started: false})
}

func (m *BehaviourManager) Remove(behaviour Behaviour) {
	// Find and remove the behaviour
	for i := range m.behaviours {
		if m.behaviours[i].Behaviour == behaviour {
			// Remove by swapping with last element and truncating
			m.behaviours[i] = m.behaviours[len(m.behaviours)-1]
			m.behaviours = m.behaviours[:len(m.behaviours)-1]
			return
		}
	}
}

// Clear removes all behaviours from the manager
func (m *BehaviourManager) Clear() {
	m.behaviours = m.behaviours[:0]
}

func (m *BehaviourManager) UpdateAll(deltaTime float32) {
	// Update loose behaviour system
	for i := range m.behaviours {
		if !m.behaviours[i].started {
			m.behaviours[i].Behaviour.Start()
			m.behaviours[i].started = true
		}
		m.behaviours[i].Behaviour.Update(deltaTime)
	}

	// Update component system
	GlobalComponentManager.UpdateAll(deltaTime)
}

func (m *BehaviourManager) UpdateAllFixed(step float32) {
	// Update loose behaviour system
	for i := range m.behaviours {
		if !m.behaviours[i].started {
			m.behaviours[i].Behaviour.Start()
			m.behaviours[i].started = true
		}
		m.behaviours[i].Behaviour.UpdateFixed(step)
	}

	// Update component system
	GlobalComponentManager.FixedUpdateAll(step)
}
