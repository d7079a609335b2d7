package openshock

import (
	"encoding/json"
	"fmt"

	"github.com/oshokin/shocker-link/internal/domain/shock"
)

const (
	// commandPrefix starts every transmit line.
	commandPrefix = "rftransmit "
	// commandType is the only actuation type this link sends.
	commandType = "shock"
)

// Encode renders cmd as the transmit line understood by the firmware,
// newline included. Keys keep their fixed order and ", "/": " separators.
func Encode(model string, shockerID int, cmd shock.Command) []byte {
	// Marshalling a string cannot fail.
	quotedModel, _ := json.Marshal(model) //nolint:errchkjson // See above.

	return fmt.Appendf(nil,
		"%s{\"model\": %s, \"id\": %d, \"type\": %q, \"intensity\": %d, \"durationMs\": %d}\n",
		commandPrefix, quotedModel, shockerID, commandType, cmd.Intensity(), cmd.DurationMs(),
	)
}
