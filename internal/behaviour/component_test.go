package behaviour

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj == nil {
		t.Fatal("NewGameObject returned nil")
	}

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active by default")
	}

	if obj.Transform == nil {
		t.Fatal("Transform should not be nil")
	}

	if obj.Transform.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", obj.Transform.Position)
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", obj.Transform.Scale)
	}
}

func TestTransformSetPosition(t *testing.T) {
	transform := &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	transform.SetPosition(mgl32.Vec3{10, 20, 30})

	if transform.Position != (mgl32.Vec3{10, 20, 30}) {
		t.Errorf("Expected position (10,20,30), got %v", transform.Position)
	}
}

func TestTransformTranslate(t *testing.T) {
	transform := &Transform{
		Position: mgl32.Vec3{5, 5, 5},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	transform.Translate(mgl32.Vec3{1, 2, 3})

	expected := mgl32.Vec3{6, 7, 8}
	if transform.Position != expected {
		t.Errorf("Expected position %v, got %v", expected, transform.Position)
	}
}

func TestTransformForward(t *testing.T) {
	transform := &Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	forward := transform.Forward()

	if !forward.ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Identity rotation should face -Z, got %v", forward)
	}
}

func TestTransformAddChild(t *testing.T) {
	parent := NewGameObject("Parent").Transform
	child := NewGameObject("Child").Transform

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child's parent reference not set")
	}
	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Error("Parent's children list not updated")
	}
}

type MockComponent struct {
	BaseComponent
	startCalled  bool
	updateCalled bool
	fixedCalled  bool
	lastDelta    float32
	lastStep     float32
}

func (m *MockComponent) Start() {
	m.startCalled = true
}

func (m *MockComponent) Update(deltaTime float32) {
	m.updateCalled = true
	m.lastDelta = deltaTime
}

func (m *MockComponent) FixedUpdate(step float32) {
	m.fixedCalled = true
	m.lastStep = step
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if len(obj.Components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components))
	}

	if comp.GetGameObject() != obj {
		t.Error("Component's GameObject reference not set correctly")
	}
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)
	obj.RemoveComponent(comp)

	if len(obj.Components) != 0 {
		t.Errorf("Expected 0 components after removal, got %d", len(obj.Components))
	}
}

func TestGameObjectGetComponentByTypeName(t *testing.T) {
	obj := NewGameObject("Test")
	camera := NewCameraComponent()
	script := NewScriptComponent("Mock", &MockComponent{})
	obj.AddComponent(camera)
	obj.AddComponent(script)

	if got := obj.GetComponent("CameraComponent"); got != Component(camera) {
		t.Error("GetComponent did not find CameraComponent by type name")
	}
	if got := obj.GetComponent("Mock"); got != Component(script) {
		t.Error("GetComponent did not find script by its registered name")
	}
	if got := obj.GetComponent("Missing"); got != nil {
		t.Errorf("GetComponent should return nil for unknown type, got %v", got)
	}
}

func TestScriptComponentForwardsDelta(t *testing.T) {
	obj := NewGameObject("Test")
	inner := &MockComponent{}
	wrapper := NewScriptComponent("Mock", inner)
	obj.AddComponent(wrapper)

	wrapper.Update(0.25)
	wrapper.FixedUpdate(0.02)

	if inner.lastDelta != 0.25 {
		t.Errorf("Expected delta 0.25 forwarded to script, got %v", inner.lastDelta)
	}
	if inner.lastStep != 0.02 {
		t.Errorf("Expected fixed step 0.02 forwarded to script, got %v", inner.lastStep)
	}
}
