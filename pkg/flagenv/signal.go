package flagenv

import "strings"

// signalNumbers maps the symbolic names the profiling library documents to
// POSIX signal numbers. Lookup is case-insensitive.
var signalNumbers = map[string]string{
	"hup":  "1",
	"int":  "2",
	"usr1": "10",
	"usr2": "12",
	"term": "15",
}

// MapSignal translates a symbolic signal name to its number. Anything not in
// the map is passed through verbatim as a presumed numeric signal identifier.
func MapSignal(name string) string {
	if n, ok := signalNumbers[strings.ToLower(name)]; ok {
		return n
	}
	return name
}
