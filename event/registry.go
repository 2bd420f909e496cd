package event

import "strings"

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

func init() {
	RegisterType("EventCountdownStarted", EventCountdownStarted)
	RegisterType("EventTimeUp", EventTimeUp)
	RegisterType("EventCountdownStopped", EventCountdownStopped)
	RegisterType("EventFadeOutComplete", EventFadeOutComplete)
	RegisterType("EventLayoutChanged", EventLayoutChanged)
}

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a name, case-insensitive, with or without the Event prefix
func GetEventType(name string) (EventType, bool) {
	if et, ok := nameToType[name]; ok {
		return et, true
	}
	for n, et := range nameToType {
		if strings.EqualFold(n, name) || strings.EqualFold(strings.TrimPrefix(n, "Event"), name) {
			return et, true
		}
	}
	return 0, false
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	return typeToName[et]
}
