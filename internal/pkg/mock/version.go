package mock

import "github.com/kcctl/kcctl/internal/pkg/version"

func NewVersionMock() *version.Version {
	return &version.Version{
		Binary:    "kcctl",
		Name:      "mock-kcctl",
		Version:   "-1.2.3",
		Commit:    "commit-abc",
		BuildDate: "2021-08-19T00:00:00+00:00",
		BuildHost: "mock-host",
		UserAgent: "mock-user",
	}
}
