// Package nftmeta extracts NFT trait metadata from Figma documents.
// It walks the frames of a Figma page, turns every component or instance
// layer into a trait_type/value pair, and persists one record per frame.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, fs/).
package nftmeta
