package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ContactPair is an ordered pair of touching collision objects. Both orders
// are stored so lookups do not depend on which body moved.
type ContactPair struct {
	A, B *resolv.Object
}

// ContactsData remembers which pairs touched in the previous frame so only
// new contacts raise collision callbacks (singleton component).
type ContactsData struct {
	Touching map[ContactPair]struct{}
}

var Contacts = donburi.NewComponentType[ContactsData]()
