package model

import (
	"encoding/json"
	"testing"
)

func TestFuelModel_Decode(t *testing.T) {
	payload := `{
		"createdAt": "2024-01-02T03:04:05Z",
		"updatedAt": "2024-02-03T04:05:06Z",
		"name": "Shelf",
		"owner": "OpenRobotics",
		"description": "A warehouse shelf",
		"likes": 4,
		"downloads": 1250,
		"filesize": 2048576,
		"upload_date": "2024-01-02T03:04:05Z",
		"modify_date": "2024-02-03T04:05:06Z",
		"license_id": 1,
		"license_name": "Creative Commons Zero v1.0 Universal",
		"license_url": "http://creativecommons.org/publicdomain/zero/1.0/",
		"license_image": "https://i.creativecommons.org/l/zero/1.0/88x31.png",
		"permission": 0,
		"url_name": "shelf",
		"private": false,
		"tags": ["warehouse", "furniture"],
		"categories": ["Furniture"]
	}`

	var m FuelModel
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if m.CreatedAt != "2024-01-02T03:04:05Z" {
		t.Errorf("CreatedAt = %q, want %q", m.CreatedAt, "2024-01-02T03:04:05Z")
	}

	if m.Name != "Shelf" {
		t.Errorf("Name = %q, want %q", m.Name, "Shelf")
	}

	if m.Owner != "OpenRobotics" {
		t.Errorf("Owner = %q, want %q", m.Owner, "OpenRobotics")
	}

	if m.Downloads != 1250 {
		t.Errorf("Downloads = %d, want %d", m.Downloads, 1250)
	}

	if m.Filesize != 2048576 {
		t.Errorf("Filesize = %d, want %d", m.Filesize, 2048576)
	}

	if len(m.Tags) != 2 || m.Tags[0] != "warehouse" {
		t.Errorf("Tags = %v, want [warehouse furniture]", m.Tags)
	}
}

func TestFuelModel_DecodeSparse(t *testing.T) {
	// tags and categories are frequently absent on the wire; unknown
	// fields must be ignored
	payload := `{"name": "Cube", "owner": "alice", "private": true, "thumbnail_url_count": 3}`

	var m FuelModel
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if len(m.Tags) != 0 {
		t.Errorf("Tags len = %d, want 0", len(m.Tags))
	}

	if len(m.Categories) != 0 {
		t.Errorf("Categories len = %d, want 0", len(m.Categories))
	}

	if !m.Private {
		t.Error("Private = false, want true")
	}
}

func TestFuelModel_HasTag(t *testing.T) {
	m := FuelModel{Tags: []string{"robot", "arm"}}

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{
			name: "present tag",
			tag:  "robot",
			want: true,
		},
		{
			name: "absent tag",
			tag:  "leg",
			want: false,
		},
		{
			name: "match is case sensitive",
			tag:  "Robot",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.HasTag(tt.tag); got != tt.want {
				t.Errorf("HasTag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}
