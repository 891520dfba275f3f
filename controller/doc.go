// Package controller turns player input into model actions.
//
// FirstPersonController polls an input.State each tick and drives the model
// activities and attempts; FirstPersonLook owns the camera orientation that the
// motor and weapon handlers read through LookDir and LookOrigin.
package controller
