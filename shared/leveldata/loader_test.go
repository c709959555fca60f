package leveldata

import (
	"testing"
	"testing/fstest"
)

const rangeTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="9">
 <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="288" width="640" height="32"/>
  <object id="2" x="100" y="100" width="0" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="300" y="288">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="4" x="40" y="288">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Targets">
  <object id="5" name="dummy" x="200" y="288">
   <properties>
    <property name="health" type="int" value="90"/>
    <property name="respawnFrames" type="int" value="30"/>
   </properties>
   <point/>
  </object>
  <object id="6" x="400" y="288">
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="10" height="10" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="144" width="160" height="16"/>
 </objectgroup>
</map>
`

func TestLoadRange(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(rangeTMX)}}
	r, err := LoadRange(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadRange: %v", err)
	}
	if r.Name != "test" || r.MapWidth != 640 || r.MapHeight != 320 {
		t.Errorf("range = %q %dx%d", r.Name, r.MapWidth, r.MapHeight)
	}
	if len(r.Solids) != 1 || r.Solids[0] != (SolidRect{X: 0, Y: 288, W: 640, H: 32}) {
		t.Errorf("solids = %+v, want the zero-width rect dropped", r.Solids)
	}

	if len(r.SpawnPoints) != 2 || r.SpawnPoints[0].X != 40 || r.SpawnPoints[1].Index != 1 {
		t.Errorf("spawns = %+v, want sorted left to right", r.SpawnPoints)
	}

	if len(r.Targets) != 2 {
		t.Fatalf("targets = %+v", r.Targets)
	}
	want := TargetSpawn{Name: "dummy", X: 200, Y: 288, Health: 90, RespawnFrames: 30}
	if r.Targets[0] != want {
		t.Errorf("target 0 = %+v, want %+v", r.Targets[0], want)
	}
	if r.Targets[1].Name != "target-2" || r.Targets[1].Health != 0 {
		t.Errorf("target 1 = %+v, want a generated name and default health", r.Targets[1])
	}
}

func TestLoadRangeErrors(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(noSpawnTMX)}}
	if _, err := LoadRange(fsys, "empty.tmx"); err == nil {
		t.Error("range without spawns loaded")
	}
	if _, err := LoadRange(fsys, "missing.tmx"); err == nil {
		t.Error("missing file loaded")
	}
}

func TestSpawn(t *testing.T) {
	r := &Range{SpawnPoints: []SpawnPoint{{X: 10, Index: 0}, {X: 50, Index: 3}}}
	if sp, ok := r.Spawn(3); !ok || sp.X != 50 {
		t.Errorf("Spawn(3) = %+v %v", sp, ok)
	}
	if sp, ok := r.Spawn(7); !ok || sp.X != 10 {
		t.Errorf("Spawn(7) = %+v %v, want the first spawn", sp, ok)
	}
	var none *Range
	if _, ok := none.Spawn(0); ok {
		t.Error("nil range returned a spawn")
	}
}
