package cssjit

import "strings"

// propertyOrders maps CSS property names to their cascade bucket.
var propertyOrders = map[string]int{
	// Layout
	"display":            OrderLayout,
	"position":           OrderLayout,
	"inset":              OrderLayout,
	"inset-inline-start": OrderLayout,
	"inset-inline-end":   OrderLayout,
	"top":                OrderLayout,
	"right":              OrderLayout,
	"bottom":             OrderLayout,
	"left":               OrderLayout,
	"z-index":            OrderLayout,
	"overflow":           OrderLayout,
	"aspect-ratio":       OrderLayout,
	"object-position":    OrderLayout,
	"content":            OrderLayout,

	// Flexbox
	"flex":        OrderFlexbox,
	"flex-basis":  OrderFlexbox,
	"flex-grow":   OrderFlexbox,
	"flex-shrink": OrderFlexbox,
	"order":       OrderFlexbox,

	// Grid
	"grid-template-columns": OrderGrid,
	"grid-template-rows":    OrderGrid,
	"grid-column":           OrderGrid,
	"grid-row":              OrderGrid,

	// Spacing
	"gap":        OrderSpacing,
	"row-gap":    OrderSpacing,
	"column-gap": OrderSpacing,

	// Sizing
	"width":      OrderSizing,
	"height":     OrderSizing,
	"min-width":  OrderSizing,
	"min-height": OrderSizing,
	"max-width":  OrderSizing,
	"max-height": OrderSizing,

	// Typography
	"color":          OrderTypography,
	"font-size":      OrderTypography,
	"font-weight":    OrderTypography,
	"font-family":    OrderTypography,
	"line-height":    OrderTypography,
	"letter-spacing": OrderTypography,

	// Background
	"background":       OrderBackground,
	"background-color": OrderBackground,
	"background-image": OrderBackground,
	"fill":             OrderBackground,
	"stroke":           OrderBackground,

	// Border
	"border-width":  OrderBorder,
	"border-color":  OrderBorder,
	"border-radius": OrderBorder,

	// Effects
	"box-shadow":          OrderEffects,
	"opacity":             OrderEffects,
	"transform":           OrderEffects,
	"filter":              OrderEffects,
	"transition-duration": OrderEffects,
	"transition-delay":    OrderEffects,

	// Interactivity
	"cursor":       OrderInteractivity,
	"accent-color": OrderInteractivity,
	"caret-color":  OrderInteractivity,
}

// categorizeProperty returns the cascade bucket for a CSS property.
func categorizeProperty(name string) int {
	if order, ok := propertyOrders[name]; ok {
		return order
	}

	switch {
	case strings.HasPrefix(name, "padding") || strings.HasPrefix(name, "margin"):
		return OrderSpacing
	case strings.HasPrefix(name, "grid-"):
		return OrderGrid
	case strings.HasPrefix(name, "flex-"):
		return OrderFlexbox
	case strings.HasPrefix(name, "border-"):
		return OrderBorder
	case strings.HasPrefix(name, "transition") || strings.HasPrefix(name, "animation"):
		return OrderEffects
	}
	return OrderBase
}
