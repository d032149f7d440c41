package catalog

import "testing"

func TestOpenDefaultsToMock(t *testing.T) {
	t.Setenv("OCEANKICKS_API_BASE_URL", "")
	t.Setenv("OCEANKICKS_USE_MOCKS", "")
	if _, ok := Open().(*Mock); !ok {
		t.Fatalf("empty base URL must select the embedded catalog")
	}
}

func TestOpenSelectsClientForBaseURL(t *testing.T) {
	t.Setenv("OCEANKICKS_API_BASE_URL", "http://backend.internal:8080")
	t.Setenv("OCEANKICKS_USE_MOCKS", "")
	if _, ok := Open().(*Client); !ok {
		t.Fatalf("base URL must select the HTTP client")
	}
}

func TestOpenMockOverrideWins(t *testing.T) {
	t.Setenv("OCEANKICKS_API_BASE_URL", "http://backend.internal:8080")
	t.Setenv("OCEANKICKS_USE_MOCKS", "true")
	if _, ok := Open().(*Mock); !ok {
		t.Fatalf("OCEANKICKS_USE_MOCKS=true must force the embedded catalog")
	}
}
