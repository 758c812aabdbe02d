// Package bedges extracts binary directed edge features from grayscale and color
// images and optionally inflates them.
//
// Each pixel gets 8 binary features, one per compass direction in the order
// S, SE, E, NE, N, NW, W, SW. A feature is set when the intensity drops across
// the pixel in that direction by more than the surrounding local variation.
package bedges
