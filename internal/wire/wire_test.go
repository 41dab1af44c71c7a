package wire

import (
	"strings"
	"testing"

	"orrery.space/internal/body"
	"orrery.space/internal/ship"
	"orrery.space/internal/vec"
)

func TestRoundtripInitialData(t *testing.T) {
	in := InitialData{
		Bodies:       body.Config{SmallestType: body.Planet},
		ClockRunning: true,
		Token:        "deadbeef",
	}
	data, err := Marshal(KindInitialData, in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	kind, payload, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if kind != KindInitialData {
		t.Fatalf("kind %v, want %v", kind, KindInitialData)
	}
	var out InitialData
	if err := Decode(kind, payload, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != in {
		t.Errorf("roundtrip mismatch: %+v != %+v", out, in)
	}
}

func TestRoundtripPeriodicUpdate(t *testing.T) {
	in := PeriodicUpdate{
		Tick: 42,
		Ships: []ShipState{
			{ID: "probe", Pos: vec.Vec3{X: 1, Y: 2, Z: 3}, Vel: vec.Vec3{X: -4}},
		},
	}
	data, err := Marshal(KindPeriodicUpdate, in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	kind, payload, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	var out PeriodicUpdate
	if err := Decode(kind, payload, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.Tick != in.Tick || len(out.Ships) != 1 || out.Ships[0] != in.Ships[0] {
		t.Errorf("roundtrip mismatch: %+v != %+v", out, in)
	}
}

func TestRoundtripCreateShip(t *testing.T) {
	in := CreateShip{
		Info: ship.Info{ID: "probe", SpawnPos: vec.Vec3{X: 7000}},
		Pos:  vec.Vec3{X: 7500},
		Vel:  vec.Vec3{Y: 8},
	}
	data, err := Marshal(KindCreateShip, in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	kind, payload, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	var out CreateShip
	if err := Decode(kind, payload, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != in {
		t.Errorf("roundtrip mismatch: %+v != %+v", out, in)
	}
}

// A large, compressible payload must come back intact through the lz4 path
// and land smaller on the wire than it was in the clear.
func TestCompressionAboveThreshold(t *testing.T) {
	update := PeriodicUpdate{Tick: 1}
	for i := 0; i < 2000; i++ {
		update.Ships = append(update.Ships, ShipState{ID: "probe"})
	}
	data, err := Marshal(KindPeriodicUpdate, update)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) > compressThreshold {
		t.Errorf("wire size %d did not shrink past the threshold", len(data))
	}
	kind, payload, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	var out PeriodicUpdate
	if err := Decode(kind, payload, &out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(out.Ships) != len(update.Ships) {
		t.Errorf("ship count %d after roundtrip, want %d", len(out.Ships), len(update.Ships))
	}
}

func TestSmallPayloadUncompressed(t *testing.T) {
	data, err := Marshal(KindToggleTime, ToggleTime{Running: true})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var env envelope
	if err := Decode(0, data, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Compressed {
		t.Errorf("tiny payload was compressed")
	}
}

func TestUnmarshalGarbage(t *testing.T) {
	if _, _, err := Unmarshal([]byte{0xff, 0x01, 0x02}); err == nil {
		t.Errorf("garbage accepted")
	}
}

func TestCheckID(t *testing.T) {
	if err := CheckID("probe-1"); err != nil {
		t.Errorf("valid id rejected: %v", err)
	}
	if err := CheckID(""); err == nil {
		t.Errorf("empty id accepted")
	}
	if err := CheckID(strings.Repeat("x", body.MaxIDLen+1)); err == nil {
		t.Errorf("oversized id accepted")
	}
	if err := CheckID(strings.Repeat("x", body.MaxIDLen)); err != nil {
		t.Errorf("max-length id rejected: %v", err)
	}
}

func TestKindString(t *testing.T) {
	if KindPeriodicUpdate.String() != "periodic_update" {
		t.Errorf("KindPeriodicUpdate.String() = %q", KindPeriodicUpdate.String())
	}
	if got := Kind(99).String(); got != "kind(99)" {
		t.Errorf("unknown kind string %q", got)
	}
}
