// SPDX-License-Identifier: MIT

package grammar

// Specification tags.
const (
	TagName             = "NAME"
	TagType             = "TYPE"
	TagComment          = "COMMENT"
	TagDimension        = "DIMENSION"
	TagCapacity         = "CAPACITY"
	TagEdgeWeightType   = "EDGE_WEIGHT_TYPE"
	TagEdgeWeightFormat = "EDGE_WEIGHT_FORMAT"
	TagEdgeDataFormat   = "EDGE_DATA_FORMAT"
	TagNodeCoordType    = "NODE_COORD_TYPE"
	TagDisplayDataType  = "DISPLAY_DATA_TYPE"
	TagEOF              = "EOF"
)

// Data section tags.
const (
	TagNodeCoordSection   = "NODE_COORD_SECTION"
	TagDepotSection       = "DEPOT_SECTION"
	TagDemandSection      = "DEMAND_SECTION"
	TagEdgeDataSection    = "EDGE_DATA_SECTION"
	TagFixedEdgesSection  = "FIXED_EDGES_SECTION"
	TagDisplayDataSection = "DISPLAY_DATA_SECTION"
	TagTourSection        = "TOUR_SECTION"
	TagEdgeWeightSection  = "EDGE_WEIGHT_SECTION"
)
