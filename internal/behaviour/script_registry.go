package behaviour

// ScriptConstructor builds a fresh, unconfigured script instance.
// Scripts register themselves in init() so the runtime can list and
// spawn them by name.
type ScriptConstructor func() Component

var scriptRegistry = make(map[string]ScriptConstructor)

func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}

	for i := 0; i < len(names)-1; i++ {
		for j := i + 1; j < len(names); j++ {
			if names[i] > names[j] {
				names[i], names[j] = names[j], names[i]
			}
		}
	}

	return names
}

func CreateScript(name string) Component {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor()
	}
	return nil
}

// CreateScriptComponent builds a registered script and wraps it so the
// owning GameObject reports it under the script's name. Returns nil if
// no script is registered under name.
func CreateScriptComponent(name string) *ScriptComponent {
	script := CreateScript(name)
	if script == nil {
		return nil
	}
	return NewScriptComponent(name, script)
}
