package accordion

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// idSeparator joins the parts of every derived identifier.
const idSeparator = "-"

// IDSet holds the derived identifiers for one accordion panel: the item
// itself, its content panel, and its header button. All three are pure
// functions of the accordion's root identifier and the item's index.
type IDSet struct {
	Item   string
	Panel  string
	Button string
}

// DeriveIDs derives the identifier triple for the item at index under the
// given root identifier. Identifiers are deterministic and collision-free
// as long as the root identifier is unique and indices are unique within
// the accordion.
func DeriveIDs(rootID string, index int) IDSet {
	item := deriveID(rootID, strconv.Itoa(index))
	return IDSet{
		Item:   item,
		Panel:  deriveID("panel", item),
		Button: deriveID("button", item),
	}
}

func deriveID(parts ...string) string {
	return strings.Join(parts, idSeparator)
}

// NewRootID returns a fresh root identifier for an accordion whose caller
// did not supply one.
func NewRootID() string {
	return deriveID("acc", uuid.NewString())
}
