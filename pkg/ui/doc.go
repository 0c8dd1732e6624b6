// Package ui holds the markup primitives shared by the daisy widgets: ordered
// attributes, element and text components, class joining and variant tables.
//
// Widgets live in the sub-packages actions, feedback and input. Every widget is a
// pure function from a props struct to a templ.Component; rendering the same props
// twice produces byte-identical output.
package ui
