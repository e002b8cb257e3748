package result

import (
	"github.com/CompassSecurity/ifacescan/pkg/logging"
)

// ReportInterfaces emits one hit event per discovered interface.
func ReportInterfaces(interfaces []string, source string) {
	for _, iface := range interfaces {
		event := logging.Hit().Str("interface", iface)
		if source != "" {
			event = event.Str("file", source)
		}
		event.Msg("INTERFACE")
	}
}
