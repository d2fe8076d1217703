package entity

// BundleComponent es una arista del grafo de bundles: el bundle contiene `Quantity`
// unidades del componente. Se almacena por id y se resuelve vía lookup; el grafo
// debe mantenerse acíclico (se valida al escribir, nunca con referencias en memoria).
type BundleComponent struct {
	BundleID    string
	ComponentID string
	Quantity    int64 // > 0
}
