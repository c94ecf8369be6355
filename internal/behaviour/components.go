package behaviour

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript    ComponentType = "Script"
	ComponentTypeBehaviour ComponentType = "Behaviour"
	ComponentTypeCamera    ComponentType = "Camera"
	ComponentTypeCustom    ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// CameraComponent holds camera lens data
type CameraComponent struct {
	BaseComponent
	FOV    float32
	Near   float32
	Far    float32
	IsMain bool // Is this the main camera?
}

func NewCameraComponent() *CameraComponent {
	return &CameraComponent{
		FOV:    45.0,
		Near:   0.1,
		Far:    10000.0,
		IsMain: false,
	}
}

func (c *CameraComponent) GetComponentType() ComponentType {
	return ComponentTypeCamera
}

func (c *CameraComponent) GetTypeName() string {
	return "CameraComponent"
}

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptName string, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptName: scriptName,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update(deltaTime float32) {
	if s.Script != nil && s.GetEnabled() {
		s.Script.Update(deltaTime)
	}
}

func (s *ScriptComponent) FixedUpdate(step float32) {
	if s.Script != nil && s.GetEnabled() {
		s.Script.FixedUpdate(step)
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}
