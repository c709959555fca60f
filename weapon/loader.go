package weapon

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// nodeParams adapts a possibly absent YAML node to Params. An action with no
// params block decodes to its zero config.
type nodeParams struct {
	node *yaml.Node
}

func (p nodeParams) Decode(v any) error {
	if p.node == nil || p.node.Kind == 0 {
		return nil
	}
	return p.node.Decode(v)
}

// Decode parses one weapon definition and builds its actions with reg.
// Actions that fail to build are logged and left nil; Validate reports them
// and Runtime.Setup skips their binding. Only unparseable input is an error.
func Decode(data []byte, reg *Registry, logger *log.Logger) (*Definition, error) {
	if logger == nil {
		logger = log.Default()
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode weapon: %w", err)
	}
	for i := range def.Bindings {
		b := &def.Bindings[i]
		if b.Hand == "" {
			b.Hand = HandRight
		}
		for j := range b.Actions {
			ab := &b.Actions[j]
			if reg == nil {
				continue
			}
			a, err := reg.Build(ab.Type, nodeParams{node: &ab.Params})
			if err != nil {
				logger.Printf("Warning: weapon %s: binding %s: action %d: %v", def.Name, b.Label(i), j, err)
				continue
			}
			ab.Action = a
		}
	}
	return &def, nil
}

// Catalog holds the weapon templates loaded at startup.
type Catalog struct {
	defs  map[string]*Definition
	names []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{defs: map[string]*Definition{}}
}

// Add stores def under its name.
func (c *Catalog) Add(def *Definition) error {
	if def == nil {
		return ErrNilDefinition
	}
	if def.Name == "" {
		return fmt.Errorf("catalog: definition has no name")
	}
	if _, dup := c.defs[def.Name]; dup {
		return fmt.Errorf("catalog: duplicate weapon %q", def.Name)
	}
	c.defs[def.Name] = def
	c.names = append(c.names, def.Name)
	sort.Strings(c.names)
	return nil
}

// Get returns the template for name. Callers must not mutate it; Runtime
// Setup clones it.
func (c *Catalog) Get(name string) (*Definition, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// Names returns the weapon names sorted.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of weapons.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// LoadCatalog reads every .yaml/.yml file in dir. A definition without a name
// takes the file stem.
func LoadCatalog(fsys fs.FS, dir string, reg *Registry, logger *log.Logger) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("load weapons %s: %w", dir, err)
	}
	c := NewCatalog()
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load weapon %s: %w", p, err)
		}
		def, err := Decode(data, reg, logger)
		if err != nil {
			return nil, fmt.Errorf("load weapon %s: %w", p, err)
		}
		if def.Name == "" {
			def.Name = strings.TrimSuffix(entry.Name(), ext)
		}
		if err := c.Add(def); err != nil {
			return nil, fmt.Errorf("load weapon %s: %w", p, err)
		}
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("no weapon definitions found in %s", dir)
	}
	return c, nil
}
