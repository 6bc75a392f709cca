package parse

import (
	"testing"

	"edgewise/pkg/geometry"
)

func TestVector(t *testing.T) {
	tests := []struct {
		input string
		want  geometry.Vector3
	}{
		{"1,2,3", geometry.NewVector3(1, 2, 3)},
		{" 0.5, -2 , 3.25 ", geometry.NewVector3(0.5, -2, 3.25)},
		{"0,0,0", geometry.NewVector3(0, 0, 0)},
	}

	for _, tt := range tests {
		got, err := Vector(tt.input)
		if err != nil {
			t.Errorf("Vector(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Vector(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestVectorInvalid(t *testing.T) {
	for _, input := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		if _, err := Vector(input); err == nil {
			t.Errorf("Vector(%q) should fail", input)
		}
	}
}

func TestEdgesShareVertexIdentity(t *testing.T) {
	edges, err := Edges([]string{
		"0,0,0:1,0,0",
		"1,0,0:1,1,0",
	})
	if err != nil {
		t.Fatalf("Edges returned error: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
	if !edges[0].SharesEndpoint(edges[1]) {
		t.Error("equal endpoint literals should share vertex identity")
	}
	if edges[0].EndID != edges[1].StartID {
		t.Errorf("expected shared ID, got %d and %d", edges[0].EndID, edges[1].StartID)
	}
}

func TestEdgesDistinctVertices(t *testing.T) {
	edges, err := Edges([]string{
		"0,0,0:1,0,0",
		"5,5,5:6,5,5",
	})
	if err != nil {
		t.Fatalf("Edges returned error: %v", err)
	}
	if edges[0].SharesEndpoint(edges[1]) {
		t.Error("distinct endpoint literals should not share identity")
	}
}

func TestEdgesWhitespaceInsensitiveIdentity(t *testing.T) {
	edges, err := Edges([]string{
		"0,0,0:1, 0, 0",
		"1,0,0:2,0,0",
	})
	if err != nil {
		t.Fatalf("Edges returned error: %v", err)
	}
	if !edges[0].SharesEndpoint(edges[1]) {
		t.Error("identity should ignore whitespace inside the literal")
	}
}

func TestEdgesInvalid(t *testing.T) {
	for _, input := range []string{"", "1,2,3", "1,2,3:4,5", "1,2,3:4,5,6:7,8,9"} {
		if _, err := Edges([]string{input}); err == nil {
			t.Errorf("Edges(%q) should fail", input)
		}
	}
}
