package model

import "fmt"

// ArtifactKind describes what an output file contains
type ArtifactKind string

const (
	ArtifactKindCollection ArtifactKind = "collection"
	ArtifactKindPostman    ArtifactKind = "postman"
)

const postmanSuffix = ".postman_collection.json"

// Artifact is one file written to the output directory during a run
type Artifact struct {
	Kind ArtifactKind `json:"kind"`
	Name string       `json:"name"`
	Path string       `json:"path"`
	Size int64        `json:"size"`
}

// SizeKB returns the size in whole kilobytes, truncating
func (a Artifact) SizeKB() int64 {
	return a.Size / 1024
}

// CollectionArtifactName returns "<collection>-<ts>.json"
func CollectionArtifactName(collection string, ts RunTimestamp) string {
	return fmt.Sprintf("%s-%s.json", collection, ts)
}

// PostmanArtifactName returns "<name>-<ts>.postman_collection.json"
func PostmanArtifactName(name string, ts RunTimestamp) string {
	return fmt.Sprintf("%s-%s%s", name, ts, postmanSuffix)
}
