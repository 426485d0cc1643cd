package components

import "github.com/yohamta/donburi"

// AuthorityData is a singleton telling systems whether this world is the
// authoritative simulation. Replicas leave all gameplay mutation to the server.
type AuthorityData struct {
	Server bool
}

var Authority = donburi.NewComponentType[AuthorityData]()
