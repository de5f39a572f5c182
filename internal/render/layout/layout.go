// Package layout computes the hub-and-satellite node arrangement of the icon.
package layout

import (
	"image"
	"image/color"
	"math"
)

// Node is a filled circle on the canvas.
type Node struct {
	Center image.Point
	Radius int
	Color  color.RGBA
}

// Edge connects two nodes by index into the node slice.
type Edge struct {
	From int
	To   int
}

// Params fixes the geometry and colours of a layout.
type Params struct {
	Center          image.Point
	HubRadius       int
	SatelliteRadius int
	OrbitRadius     int
	Satellites      int
	// Primary colours the hub and odd satellites, Secondary the even ones.
	Primary   color.RGBA
	Secondary color.RGBA
}

// SatelliteAngle returns the angle in radians of satellite i of n, measured
// clockwise on screen from the positive x axis.
func SatelliteAngle(i, n int) float64 {
	return 2 * math.Pi * float64(i) / float64(n)
}

// Nodes returns the hub followed by the satellites in generation order.
func Nodes(p Params) []Node {
	nodes := make([]Node, 0, p.Satellites+1)
	nodes = append(nodes, Node{Center: p.Center, Radius: p.HubRadius, Color: p.Primary})
	for i := 0; i < p.Satellites; i++ {
		angle := SatelliteAngle(i, p.Satellites)
		c := p.Secondary
		if i%2 == 1 {
			c = p.Primary
		}
		nodes = append(nodes, Node{
			Center: image.Pt(
				p.Center.X+int(math.Round(float64(p.OrbitRadius)*math.Cos(angle))),
				p.Center.Y+int(math.Round(float64(p.OrbitRadius)*math.Sin(angle))),
			),
			Radius: p.SatelliteRadius,
			Color:  c,
		})
	}
	return nodes
}

// Edges connects the hub (node 0) to every satellite. Satellites are not
// connected to each other.
func Edges(nodes []Node) []Edge {
	if len(nodes) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		edges = append(edges, Edge{From: 0, To: i})
	}
	return edges
}
