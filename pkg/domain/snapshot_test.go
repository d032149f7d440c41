package domain

import "testing"

func TestDecodeCartSnapshotRejectsNonArrayItems(t *testing.T) {
	state := DecodeCartSnapshot([]byte(`{"items":"not-an-array"}`))
	if len(state.Items) != 0 || state.SidebarOpen {
		t.Fatalf("malformed items must degrade to the empty state, got %+v", state)
	}
}

func TestDecodeCartSnapshotMalformedPayloads(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"absent", ""},
		{"invalid json", "{nope"},
		{"array root", `[1,2,3]`},
		{"null items", `{"items":null,"sidebarOpen":true}`},
		{"missing items", `{"sidebarOpen":true}`},
		{"scalar root", `42`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := DecodeCartSnapshot([]byte(tc.payload))
			if len(state.Items) != 0 || state.SidebarOpen {
				t.Fatalf("expected empty initial state, got %+v", state)
			}
		})
	}
}

func TestDecodeCartSnapshotRenormalizesQty(t *testing.T) {
	payload := `{"items":[{"id":"1","name":"Wave Runner X","price":129,"qty":0},{"id":"2","price":89,"qty":"3"}],"sidebarOpen":true}`
	state := DecodeCartSnapshot([]byte(payload))
	if len(state.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(state.Items))
	}
	if state.Items[0].Qty != 1 {
		t.Fatalf("corrupted qty must clamp to 1, got %d", state.Items[0].Qty)
	}
	if state.Items[1].Qty != 3 {
		t.Fatalf("string qty must parse, got %d", state.Items[1].Qty)
	}
	if !state.SidebarOpen {
		t.Fatalf("sidebar flag must survive hydration")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	state := CartState{
		Items: []LineItem{
			{ID: "1", Name: "Wave Runner X", Price: 129, Qty: 2, Size: "42", Color: "Navy"},
			{ID: "2", Name: "Harbor Court", Price: 89, Qty: 1},
		},
		SidebarOpen: true,
	}
	payload, err := EncodeCartSnapshot(state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := DecodeCartSnapshot(payload)
	if len(got.Items) != 2 || got.SidebarOpen != state.SidebarOpen {
		t.Fatalf("round trip lost state: %+v", got)
	}
	for i := range state.Items {
		if got.Items[i] != state.Items[i] {
			t.Fatalf("item %d changed across round trip: %+v vs %+v", i, got.Items[i], state.Items[i])
		}
	}
}

func TestDecodeCartSnapshotToleratesCorruptItemFields(t *testing.T) {
	// Hand-edited storage with numeric variant fields and a string price.
	payload := `{"items":[{"id":1,"name":"X","price":"129.5","qty":2,"size":42}],"sidebarOpen":false}`
	state := DecodeCartSnapshot([]byte(payload))
	if len(state.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(state.Items))
	}
	it := state.Items[0]
	if it.ID != "1" || it.Size != "42" || it.Price != 129.5 || it.Qty != 2 {
		t.Fatalf("coercion failed: %+v", it)
	}
}
