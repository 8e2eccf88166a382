package config

// ClassSpec is one entry of a classification hierarchy document: a class
// name and its parent (empty for a root class).
type ClassSpec struct {
	Name   string `json:"name"`
	Parent string `json:"parent"`
}
