package optim

import "gonum.org/v1/gonum/floats"

// GD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	x = x - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	x = x - lr * velocity
//
// Momentum helps accelerate descent in relevant directions and dampens oscillations.
//
// Example:
//
//	res, err := optim.Minimize(f, x0, optim.NewGD(optim.GDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	}), optim.Settings{})
type GD struct {
	lr       float64
	momentum float64
	velocity []float64
}

// GDConfig holds configuration for gradient descent.
type GDConfig struct {
	LR       float64 // Learning rate (default: 0.1)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// Default gradient descent hyperparameters.
const DefaultGDLR = 0.1

// NewGD creates a new gradient descent optimizer.
func NewGD(config GDConfig) *GD {
	// Set defaults
	if config.LR == 0 {
		config.LR = DefaultGDLR
	}

	return &GD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single descent update on x.
//   - Without momentum: x -= lr * grad
//   - With momentum: velocity = momentum * velocity + grad, x -= lr * velocity
func (g *GD) Step(x, grad []float64) {
	if g.momentum == 0 {
		floats.AddScaled(x, -g.lr, grad)
		return
	}

	if len(g.velocity) != len(x) {
		g.velocity = make([]float64, len(x))
	}
	floats.Scale(g.momentum, g.velocity)
	floats.Add(g.velocity, grad)
	floats.AddScaled(x, -g.lr, g.velocity)
}

// Reset clears the velocity buffer.
func (g *GD) Reset(n int) {
	if g.momentum == 0 {
		g.velocity = nil
		return
	}
	g.velocity = make([]float64, n)
}

// GetLR returns the current learning rate.
func (g *GD) GetLR() float64 {
	return g.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling.
func (g *GD) SetLR(lr float64) {
	g.lr = lr
}

// Name returns "gd".
func (g *GD) Name() string {
	return "gd"
}
