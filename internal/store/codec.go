package store

import (
	"encoding/json"
	"fmt"

	"hetvrp/internal/customer"
	"hetvrp/internal/geo"
)

type pointDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type customerDoc struct {
	pointDoc
	Demand float64 `json:"demand"`
}

// instanceDoc is the stored JSON body of a customer set. The depot is kept
// apart since NewSet always gives it zero demand.
type instanceDoc struct {
	Depot     pointDoc      `json:"depot"`
	Customers []customerDoc `json:"customers"`
}

func encodeSet(cs *customer.Set) ([]byte, error) {
	nodes := cs.Nodes()
	depot := nodes[0].Pos()
	doc := instanceDoc{
		Depot:     pointDoc{depot.X, depot.Y},
		Customers: make([]customerDoc, 0, len(nodes)-1),
	}
	for _, c := range nodes[1:] {
		p := c.Pos()
		doc.Customers = append(doc.Customers, customerDoc{pointDoc{p.X, p.Y}, c.Demand()})
	}
	return json.Marshal(doc)
}

func decodeSet(data []byte) (*customer.Set, error) {
	var doc instanceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode instance: %w", err)
	}
	cs := make([]customer.Customer, len(doc.Customers))
	for i, c := range doc.Customers {
		cs[i] = customer.New(geo.Vec2{X: c.X, Y: c.Y}, c.Demand)
	}
	return customer.NewSet(geo.Vec2{X: doc.Depot.X, Y: doc.Depot.Y}, cs), nil
}
