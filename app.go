package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/chazu/ifcforge/pkg/catalog"
	"github.com/chazu/ifcforge/pkg/export/gltf"
	"github.com/chazu/ifcforge/pkg/kernel"
	"github.com/chazu/ifcforge/pkg/kernel/sdfx"
	"github.com/chazu/ifcforge/pkg/product"
	"github.com/chazu/ifcforge/pkg/tessellate"
	"github.com/chazu/ifcforge/pkg/wizard"
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx     context.Context
	kernel  kernel.Kernel
	wizard  *wizard.Wizard
	catalog catalog.Catalog
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// GenerateResult is what every generator binding returns to the
// frontend: meshes on success, a message on failure, never both.
type GenerateResult struct {
	Meshes []MeshData `json:"meshes"`
	Error  string     `json:"error,omitempty"`
}

// WizardStatus mirrors the configurator state for the frontend.
type WizardStatus struct {
	State    string             `json:"state"`
	Finished bool               `json:"finished"`
	Params   product.BankParams `json:"params"`
}

// NewApp creates a new App with the sdfx kernel and the stock catalog.
func NewApp() *App {
	return &App{
		kernel:  sdfx.New(),
		wizard:  wizard.New(),
		catalog: catalog.Default(),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Colors returns the hex-to-name palette for the color picker.
func (a *App) Colors() map[string]string {
	return a.catalog.Colors
}

// GenerateMailbox builds the preview mesh for a single mailbox.
func (a *App) GenerateMailbox(p product.MailboxParams) GenerateResult {
	tree, err := product.AssembleMailbox(p)
	if err != nil {
		return errorResult("mailbox", err)
	}
	mesh, err := tessellate.ShapeMesh(tree, a.kernel, "Briefkasten", p.Color)
	if err != nil {
		return errorResult("mailbox", err)
	}
	return GenerateResult{Meshes: []MeshData{toMeshData(mesh)}}
}

// GenerateBank builds the preview meshes for a mailbox bank: the frame
// plus one face plate per grid cell.
func (a *App) GenerateBank(p product.BankParams) GenerateResult {
	meshes, err := bankMeshes(p, a.kernel)
	if err != nil {
		return errorResult("bank", err)
	}
	return GenerateResult{Meshes: toMeshDataAll(meshes)}
}

// GeneratePlate builds the preview mesh for the standalone face plate.
func (a *App) GeneratePlate(p product.PlateParams) GenerateResult {
	tree, err := product.AssemblePlate(p)
	if err != nil {
		return errorResult("plate", err)
	}
	mesh, err := tessellate.ShapeMesh(tree, a.kernel, "Metallblech_mit_Loechern", "")
	if err != nil {
		return errorResult("plate", err)
	}
	return GenerateResult{Meshes: []MeshData{toMeshData(mesh)}}
}

// GenerateTable builds the preview mesh for the table.
func (a *App) GenerateTable(p product.TableParams) GenerateResult {
	tree, err := product.AssembleTable(p)
	if err != nil {
		return errorResult("table", err)
	}
	mesh, err := tessellate.ShapeMesh(tree, a.kernel, "Table", "")
	if err != nil {
		return errorResult("table", err)
	}
	return GenerateResult{Meshes: []MeshData{toMeshData(mesh)}}
}

// WizardStatus reports the current configurator step and parameters.
func (a *App) WizardStatus() WizardStatus {
	return a.status()
}

// WizardFire advances the configurator by a named event: "start",
// "next", "back" or "reset".
func (a *App) WizardFire(event string) (WizardStatus, error) {
	e, err := parseEvent(event)
	if err != nil {
		return a.status(), err
	}
	if err := a.wizard.Fire(e); err != nil {
		return a.status(), err
	}
	return a.status(), nil
}

// WizardSetSize records cell size and grid counts during the size step.
func (a *App) WizardSetSize(width, height, depth float64, rows, columns int) (WizardStatus, error) {
	if err := a.wizard.SetSize(width, height, depth, rows, columns); err != nil {
		return a.status(), err
	}
	return a.status(), nil
}

// WizardSetColor records the finish color during the color step.
func (a *App) WizardSetColor(hex string) (WizardStatus, error) {
	if err := a.wizard.SetColor(hex); err != nil {
		return a.status(), err
	}
	return a.status(), nil
}

// WizardGenerate builds the bank configured by a finished wizard.
func (a *App) WizardGenerate() GenerateResult {
	if !a.wizard.Finished() {
		return GenerateResult{Error: "configuration not finished"}
	}
	meshes, err := bankMeshes(a.wizard.Params(), a.kernel)
	if err != nil {
		return errorResult("wizard bank", err)
	}
	return GenerateResult{Meshes: toMeshDataAll(meshes)}
}

// WizardExportGLB returns the finished bank as a base64-encoded binary
// glTF blob for download from the frontend.
func (a *App) WizardExportGLB() (string, error) {
	if !a.wizard.Finished() {
		return "", fmt.Errorf("configuration not finished")
	}
	meshes, err := bankMeshes(a.wizard.Params(), a.kernel)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := gltf.Encode(&buf, meshes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (a *App) status() WizardStatus {
	return WizardStatus{
		State:    a.wizard.State().String(),
		Finished: a.wizard.Finished(),
		Params:   a.wizard.Params(),
	}
}

func parseEvent(name string) (wizard.Event, error) {
	switch name {
	case "start":
		return wizard.EventStart, nil
	case "next":
		return wizard.EventNext, nil
	case "back":
		return wizard.EventBack, nil
	case "reset":
		return wizard.EventReset, nil
	}
	return 0, fmt.Errorf("unknown event %q", name)
}

// bankMeshes tessellates one frame mesh plus a face plate per cell.
func bankMeshes(p product.BankParams, k kernel.Kernel) ([]*kernel.Mesh, error) {
	p = p.Clamp()
	frameTree, err := product.AssembleBankFrame(p)
	if err != nil {
		return nil, err
	}
	faceTree, err := product.AssembleBankFace(p)
	if err != nil {
		return nil, err
	}
	grid, err := product.BankGrid(p)
	if err != nil {
		return nil, err
	}

	frame, err := tessellate.ShapeMesh(frameTree, k, "Briefkastenrahmen", p.Color)
	if err != nil {
		return nil, err
	}
	faces, err := tessellate.GridMeshes(faceTree, grid, k, "Deckblatt", "")
	if err != nil {
		return nil, err
	}

	return append([]*kernel.Mesh{frame}, faces...), nil
}

func toMeshDataAll(meshes []*kernel.Mesh) []MeshData {
	out := make([]MeshData, len(meshes))
	for i, m := range meshes {
		out[i] = toMeshData(m)
	}
	return out
}

func toMeshData(m *kernel.Mesh) MeshData {
	return MeshData{
		Vertices: m.Vertices,
		Normals:  m.Normals,
		Indices:  m.Indices,
		PartName: m.PartName,
		Color:    m.Color,
	}
}

func errorResult(what string, err error) GenerateResult {
	log.Printf("%s generation failed: %v", what, err)
	return GenerateResult{Error: err.Error()}
}
