package optim

import "math"

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	x = x - lr * m_hat / (sqrt(v_hat) + eps)           // Update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	res, err := optim.Minimize(f, x0, optim.NewAdam(optim.AdamConfig{
//	    LR:    0.1,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	}), optim.Settings{})
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int       // Timestep for bias correction
	m     []float64 // First moment estimates
	v     []float64 // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.1)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// Default Adam hyperparameters.
const (
	DefaultAdamLR = 0.1
	DefaultBeta1  = 0.9
	DefaultBeta2  = 0.999
	DefaultEps    = 1e-8
)

// NewAdam creates a new Adam optimizer.
//
// Zero fields take the defaults:
//   - LR: 0.1
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(config AdamConfig) *Adam {
	// Set defaults
	if config.LR == 0 {
		config.LR = DefaultAdamLR
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = DefaultBeta1
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = DefaultBeta2
	}
	if config.Eps == 0 {
		config.Eps = DefaultEps
	}

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
}

// Step performs a single optimization step using Adam algorithm.
//  1. Update biased first moment estimate
//  2. Update biased second moment estimate
//  3. Compute bias-corrected moment estimates
//  4. Update x
func (a *Adam) Step(x, grad []float64) {
	if len(a.m) != len(x) {
		a.Reset(len(x))
	}

	// Increment timestep
	a.t++

	// bias_correction1 = 1 - beta1^t
	// bias_correction2 = 1 - beta2^t
	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for i := range x {
		g := grad[i]

		a.m[i] = a.beta1*a.m[i] + (1.0-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1.0-a.beta2)*g*g

		mHat := a.m[i] / biasCorrection1
		vHat := a.v[i] / biasCorrection2

		x[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
}

// Reset zeroes both moment accumulators and the timestep.
func (a *Adam) Reset(n int) {
	a.t = 0
	a.m = make([]float64, n)
	a.v = make([]float64, n)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the current timestep.
//
// Useful for monitoring optimizer state.
func (a *Adam) GetTimestep() int {
	return a.t
}

// Name returns "adam".
func (a *Adam) Name() string {
	return "adam"
}
