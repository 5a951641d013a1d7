package handlers

import "context"

func (h *Handler) explainEquation(context.Context) error {
	h.ui.Info(equationIntro)
	h.ui.Success(equationForm)
	h.ui.Info(equationTerms)
	h.ui.Success(equationInverse)
	h.ui.Info(equationExampleSetup)
	h.ui.Success(equationExampleWork)
	h.ui.Info(equationExampleResult)
	return h.waitForEnter()
}

func (h *Handler) about(context.Context) error {
	h.ui.Info("\n--- ABOUT / HELP MENU ---\n")
	h.ui.Info("1. What is the Law of Cooling?")
	h.ui.Info("2. Typical values for h, A, m, and c")
	h.ui.Info("3. How do you estimate the cooling constant?")

	choice, err := h.ask("\nChoose an option (1-3): ")
	if err != nil {
		return err
	}
	h.ui.Plain("\n")

	switch choice {
	case "1":
		h.ui.Info(aboutLaw)
	case "2":
		h.ui.Info(aboutTypicalValues)
	case "3":
		h.ui.Info(aboutEstimatingK)
	default:
		h.ui.Error("Invalid choice. Returning to menu.")
	}
	return h.waitForEnter()
}

const equationIntro = `
------------------------------
   Newton's Law of Cooling:
------------------------------`

const equationForm = `
T(t) = T_env + (T0 - T_env) * e^(-k * t)`

const equationTerms = `
Where:

T(t)   = temperature of the object at time t
T_env  = temperature of the surroundings; the object settles at this value
T0     = starting temperature of the object
k      = cooling constant (1/min); larger k means faster cooling
e^(-kt) shrinks over time, so the object loses heat quickly at first
        and ever more slowly as it nears T_env

In words: a hot object cools fast while it is much hotter than the room,
and slows down as the gap closes.

The formula gives the temperature at a chosen time. Usually we want the
reverse: how long until the object reaches a given temperature?`

const equationInverse = `
Solving for t:

t = -(1 / k) * ln((T_target - T_env) / (T0 - T_env))`

const equationExampleSetup = `
Example:

- A metal block starts at 150°C
- The room is at 25°C
- The cooling constant is k = 0.1
- We want the block at 50°C

Substituting:`

const equationExampleWork = `
t = -(1 / 0.1) * ln((50 - 25) / (150 - 25))
  = -(1 / 0.1) * ln(25 / 125)
  = -(1 / 0.1) * ln(0.2)
  = -10 * -1.609
  = 16.09`

const equationExampleResult = `
The block needs about 16 minutes to cool from 150°C to 50°C in a 25°C room
with k = 0.1.`

const aboutLaw = `Newton's Law of Cooling describes how quickly an object changes temperature
when its surroundings are at a different temperature.

The rate of cooling is proportional to the difference between
- the temperature of the object
- the temperature of its surroundings

A very hot object in a cool room therefore cools quickly at first, and more
slowly as it approaches room temperature.`

const aboutTypicalValues = `Typical values:
Convective heat transfer coefficient (h):
- Air, natural convection: 5–25 W/(m²·K)
- Air, fan or wind: 10–200 W/(m²·K)
- Moving water: 50–10000 W/(m²·K)

Surface area (A):
- Small objects: 0.001–0.1 m²
- Medium objects: 0.1–2 m²
- Large objects: 2–10 m²

Mass (m):
- Small objects: 0.01–1 kg
- Medium objects: 1–20 kg
- Large objects: 20–200 kg

Specific heat capacity (c):
- Metals: 400–900 J/(kg·K)
- Plastics: 1000–2000 J/(kg·K)
- Wood: 1500–2500 J/(kg·K)
- Water: 4180 J/(kg·K)`

const aboutEstimatingK = `The cooling constant k sets how fast an object cools in a given environment.

Formula:
    k = (h * A) / (m * c)

Where:
- h = convective heat transfer coefficient
- A = surface area
- m = mass
- c = specific heat capacity

- Larger h or A: heat leaves faster, so k grows
- Larger m or c: the object stores more heat, so k shrinks

The result is labelled 1/min so it can be fed to the cooling-time calculator.
Note: with strict SI inputs (W, m2, kg, J) the formula actually gives k in 1/s.
Multiply by 60 if you need a true per-minute value.`
