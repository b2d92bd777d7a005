package isy

// DeviceNode is one node (device) known to the controller.
type DeviceNode struct {
	Address string `xml:"address" json:"address"`
	Name    string `xml:"name" json:"name"`
	Type    string `xml:"type" json:"type,omitempty"`
	Enabled bool   `xml:"enabled" json:"enabled,omitempty"`
}

// Scene is a group of nodes controlled together.
type Scene struct {
	Address string   `xml:"address" json:"address"`
	Name    string   `xml:"name" json:"name"`
	Members []string `xml:"members>link" json:"members,omitempty"`
}

// Program is one automation program on the controller.
type Program struct {
	ID             string `xml:"id,attr" json:"id"`
	Status         string `xml:"status,attr" json:"status,omitempty"`
	Name           string `xml:"name" json:"name"`
	Enabled        bool   `xml:"enabled" json:"enabled,omitempty"`
	LastRunTime    string `xml:"lastRunTime" json:"lastRunTime,omitempty"`
	LastFinishTime string `xml:"lastFinishTime" json:"lastFinishTime,omitempty"`
}

// VariableDef is the definition of one controller variable.
type VariableDef struct {
	ID   string `xml:"id,attr" json:"id"`
	Name string `xml:"name,attr" json:"name"`
}

// Property is one state property of a node, as reported by the status
// endpoint (e.g. ST with the current level).
type Property struct {
	ID        string `xml:"id,attr" json:"id"`
	Value     string `xml:"value,attr" json:"value"`
	Formatted string `xml:"formatted,attr" json:"formatted,omitempty"`
	UOM       string `xml:"uom,attr" json:"uom,omitempty"`
}

// NodeStatus pairs a node address with its current properties.
type NodeStatus struct {
	ID    string     `xml:"id,attr" json:"id"`
	Props []Property `xml:"prop" json:"prop,omitempty"`
}

// Forecast is one entry of the controller's climate module forecast.
type Forecast struct {
	Date       string `xml:"date" json:"date,omitempty"`
	High       string `xml:"high" json:"high,omitempty"`
	Low        string `xml:"low" json:"low,omitempty"`
	Humidity   string `xml:"humidity" json:"humidity,omitempty"`
	Conditions string `xml:"conditions" json:"conditions,omitempty"`
}
