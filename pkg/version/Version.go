package version

import (
	"fmt"
	"strings"
)

type Version struct {
	Client string
}

func New(client string) *Version {
	return &Version{
		Client: strings.TrimSpace(client),
	}
}

func (v *Version) String() string {
	return fmt.Sprintf("client: %s", v.Client)
}
