package behaviour

import (
	"testing"
)

func TestComponentManagerRegister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 1 {
		t.Errorf("Expected 1 registered object, got %d", len(all))
	}
}

func TestComponentManagerUnregister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)
	cm.UnregisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Expected 0 objects after unregister, got %d", len(all))
	}
}

func TestComponentManagerUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.016)

	if !comp.updateCalled {
		t.Error("Update() was not called on component")
	}
	if comp.lastDelta != 0.016 {
		t.Errorf("Expected delta 0.016 passed through, got %v", comp.lastDelta)
	}
}

func TestComponentManagerFixedUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.FixedUpdateAll(0.05)

	if !comp.fixedCalled {
		t.Error("FixedUpdate() was not called on component")
	}
	if comp.lastStep != 0.05 {
		t.Errorf("Expected fixed step 0.05 passed through, got %v", comp.lastStep)
	}
}

func TestComponentManagerInactiveObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	obj.Active = false
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.016)

	if comp.updateCalled {
		t.Error("Update() should not be called on inactive object")
	}
}

func TestComponentManagerFindGameObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("FindMe")
	cm.RegisterGameObject(obj)

	found := cm.FindGameObject("FindMe")

	if found == nil {
		t.Error("FindGameObject should find registered object")
	}
	if found != obj {
		t.Error("FindGameObject returned wrong object")
	}
}

func TestComponentManagerFindGameObjectNotFound(t *testing.T) {
	cm := NewComponentManager()

	found := cm.FindGameObject("NotHere")

	if found != nil {
		t.Error("FindGameObject should return nil for non-existent object")
	}
}

func TestComponentManagerFindGameObjectsWithTag(t *testing.T) {
	cm := NewComponentManager()
	a := NewGameObject("A")
	a.Tag = "fish"
	b := NewGameObject("B")
	b.Tag = "fish"
	c := NewGameObject("C")
	c.Tag = "camera"
	cm.RegisterGameObject(a)
	cm.RegisterGameObject(b)
	cm.RegisterGameObject(c)

	fish := cm.FindGameObjectsWithTag("fish")

	if len(fish) != 2 {
		t.Errorf("Expected 2 objects tagged 'fish', got %d", len(fish))
	}
}

func TestComponentManagerDeferredDestroy(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Doomed")
	cm.RegisterGameObject(obj)

	cm.DestroyGameObject(obj)

	if len(cm.GetAllGameObjects()) != 1 {
		t.Error("DestroyGameObject should defer removal until next UpdateAll")
	}

	cm.UpdateAll(0.016)

	if len(cm.GetAllGameObjects()) != 0 {
		t.Errorf("Expected 0 objects after deferred destroy, got %d", len(cm.GetAllGameObjects()))
	}
}

func TestComponentManagerClear(t *testing.T) {
	cm := NewComponentManager()
	cm.RegisterGameObject(NewGameObject("A"))
	cm.RegisterGameObject(NewGameObject("B"))

	cm.Clear()

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Clear should remove all objects, got %d", len(all))
	}
}
